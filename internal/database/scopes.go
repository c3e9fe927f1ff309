package database

import "gorm.io/gorm"

// OwnedBy restricts a query to rows belonging to the given user.
// Every feature table carries an id_usuario column; repositories apply
// this scope so a caller can never read or touch another user's rows.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id_usuario = ?", userID)
	}
}
