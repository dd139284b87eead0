package domain

import "gorm.io/gorm"

// Migrate creates the full schema. The join table is registered first so
// AutoMigrate builds event_registrations with its composite primary key
// instead of gorm's default surrogate shape.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Event{}, "RegisteredUsers", &EventRegistration{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&User{},
		&BlogPost{},
		&Event{},
		&Gallery{},
		&Contact{},
	)
}
