package models

type TaskStatus string

const (
	TaskStatusPendiente  TaskStatus = "pendiente"
	TaskStatusCompletada TaskStatus = "completada"
)

type Task struct {
	ID               uint64     `gorm:"column:id_tarea;primarykey" json:"id_tarea"`
	UserID           uint64     `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Titulo           string     `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Descripcion      string     `gorm:"column:descripcion;type:text" json:"descripcion"`
	Prioridad        string     `gorm:"column:prioridad;type:varchar(20);not null" json:"prioridad"`
	FechaVencimiento *string    `gorm:"column:fecha_vencimiento;type:date" json:"fecha_vencimiento"`
	Estado           TaskStatus `gorm:"column:estado;type:varchar(20);not null;default:'pendiente'" json:"estado"`
}

func (Task) TableName() string { return "tareas" }
