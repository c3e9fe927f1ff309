package models

// Course tracks an enrolled course. Certificado, when set, is the
// serving path of the uploaded certificate PDF and must reference a
// file that exists on disk at the time it is written.
type Course struct {
	ID               uint64  `gorm:"column:id_curso;primarykey" json:"id_curso"`
	UserID           uint64  `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	NombreCurso      string  `gorm:"column:nombre_curso;type:varchar(255);not null" json:"nombre_curso"`
	Progreso         string  `gorm:"column:progreso;type:varchar(50);not null" json:"progreso"`
	FechaInscripcion string  `gorm:"column:fecha_inscripcion;type:date;not null" json:"fecha_inscripcion"`
	Certificado      *string `gorm:"column:certificado;type:varchar(512)" json:"certificado"`
}

func (Course) TableName() string { return "cursos" }
