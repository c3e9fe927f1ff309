package models

import "time"

type User struct {
	ID           uint64    `gorm:"column:id_usuario;primarykey" json:"id_usuario"`
	Nombre       string    `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:contrasena;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"-"`

	// Relations
	Tareas   []Task            `gorm:"foreignKey:UserID" json:"-"`
	Notas    []Note            `gorm:"foreignKey:UserID" json:"-"`
	Eventos  []Event           `gorm:"foreignKey:UserID" json:"-"`
	Cursos   []Course          `gorm:"foreignKey:UserID" json:"-"`
	Recursos []Resource        `gorm:"foreignKey:UserID" json:"-"`
	Sesiones []PomodoroSession `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "usuarios" }
