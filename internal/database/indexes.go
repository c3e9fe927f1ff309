package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Per-user listing is the dominant query on every feature table
		{"tareas", "idx_tareas_id_usuario", "id_usuario"},
		{"notas", "idx_notas_id_usuario", "id_usuario"},
		{"notas", "idx_notas_fecha_creacion", "fecha_creacion"},
		{"eventos_academicos", "idx_eventos_id_usuario", "id_usuario"},
		{"cursos", "idx_cursos_id_usuario", "id_usuario"},
		{"recursos", "idx_recursos_id_usuario", "id_usuario"},
		{"sesiones_pomodoro", "idx_sesiones_id_usuario", "id_usuario"},
		{"sesiones_pomodoro", "idx_sesiones_date", "date"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
