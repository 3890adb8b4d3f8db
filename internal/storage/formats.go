package storage

import (
	"database/sql"
	"fmt"
)

// ReferenceFormat is a named, persisted format script.
type ReferenceFormat struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SaveFormat inserts or updates the format script with the given name.
func (d *DB) SaveFormat(name, code string) error {
	if name == "" {
		return fmt.Errorf("format name must not be empty")
	}

	_, err := d.db.Exec(`
		INSERT INTO reference_formats (name, code) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET code = excluded.code
	`, name, code)
	if err != nil {
		return fmt.Errorf("saving format %q: %w", name, err)
	}
	return nil
}

// GetFormat retrieves a format script by name. Returns (nil, nil) when no
// such format exists.
func (d *DB) GetFormat(name string) (*ReferenceFormat, error) {
	var f ReferenceFormat
	err := d.db.QueryRow(`
		SELECT id, name, code FROM reference_formats WHERE name = ?
	`, name).Scan(&f.ID, &f.Name, &f.Code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting format %q: %w", name, err)
	}
	return &f, nil
}

// ListFormats returns all format scripts ordered by name.
func (d *DB) ListFormats() ([]ReferenceFormat, error) {
	rows, err := d.db.Query(`SELECT id, name, code FROM reference_formats ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing formats: %w", err)
	}
	defer rows.Close()

	var formats []ReferenceFormat
	for rows.Next() {
		var f ReferenceFormat
		if err := rows.Scan(&f.ID, &f.Name, &f.Code); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, rows.Err()
}

// DeleteFormat removes a format script by name.
func (d *DB) DeleteFormat(name string) error {
	res, err := d.db.Exec(`DELETE FROM reference_formats WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting format %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no format named %q", name)
	}
	return nil
}
