package models

// PomodoroSession records one completed timer interval. The countdown
// itself runs on the client; only finished sessions reach the server.
type PomodoroSession struct {
	ID       uint64 `gorm:"column:id_sesion;primarykey" json:"id_sesion"`
	UserID   uint64 `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Mode     string `gorm:"column:mode;type:varchar(20);not null" json:"mode"`
	Duration int    `gorm:"column:duration;not null" json:"duration"`
	Date     string `gorm:"column:date;type:date;not null" json:"date"`
}

func (PomodoroSession) TableName() string { return "sesiones_pomodoro" }
