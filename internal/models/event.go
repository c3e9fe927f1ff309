package models

// Event is an academic planner entry (exam, assignment deadline, class...).
type Event struct {
	ID           uint64 `gorm:"column:id_evento;primarykey" json:"id_evento"`
	UserID       uint64 `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Titulo       string `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Descripcion  string `gorm:"column:descripcion;type:text" json:"descripcion"`
	Tipo         string `gorm:"column:tipo;type:varchar(50);not null" json:"tipo"`
	FechaInicio  string `gorm:"column:fecha_inicio;type:datetime;not null" json:"fecha_inicio"`
	FechaFin     string `gorm:"column:fecha_fin;type:datetime;not null" json:"fecha_fin"`
	Recordatorio bool   `gorm:"column:recordatorio;not null;default:false" json:"recordatorio"`
}

func (Event) TableName() string { return "eventos_academicos" }
