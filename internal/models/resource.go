package models

// Resource is a file in the user's study library. RutaArchivo is the
// serving path of the stored file.
type Resource struct {
	ID            uint64  `gorm:"column:id_recurso;primarykey" json:"id_recurso"`
	UserID        uint64  `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	NombreArchivo string  `gorm:"column:nombre_archivo;type:varchar(255);not null" json:"nombre_archivo"`
	RutaArchivo   string  `gorm:"column:ruta_archivo;type:varchar(512);not null" json:"ruta_archivo"`
	Etiqueta      *string `gorm:"column:etiqueta;type:varchar(100)" json:"etiqueta"`
}

func (Resource) TableName() string { return "recursos" }
