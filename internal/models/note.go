package models

import "time"

type Note struct {
	ID            uint64    `gorm:"column:id_nota;primarykey" json:"id_nota"`
	UserID        uint64    `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Titulo        string    `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Contenido     string    `gorm:"column:contenido;type:text;not null" json:"contenido"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;not null" json:"fecha_creacion"`
}

func (Note) TableName() string { return "notas" }
