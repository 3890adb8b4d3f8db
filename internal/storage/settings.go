package storage

import (
	"database/sql"
	"fmt"
)

// OwnerNameSetting is the settings key holding the user's own display name,
// in the same convention as normalized author names ("X. Y. Family").
const OwnerNameSetting = "name"

// GetSetting retrieves a setting value. Returns an empty string when the
// setting has never been set.
func (d *DB) GetSetting(name string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM settings WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("getting setting %q: %w", name, err)
	}
	return value, nil
}

// SetSetting inserts or updates a setting.
func (d *DB) SetSetting(name, value string) error {
	if name == "" {
		return fmt.Errorf("setting name must not be empty")
	}

	_, err := d.db.Exec(`
		INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("saving setting %q: %w", name, err)
	}
	return nil
}

// OwnerName returns the configured owner identity, used as the firstauthor
// binding and for first-author detection.
func (d *DB) OwnerName() (string, error) {
	return d.GetSetting(OwnerNameSetting)
}
