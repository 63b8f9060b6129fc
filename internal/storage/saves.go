package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// SaveBlob stores data under key, replacing any previous value.
func (s *Store) SaveBlob(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}

// LoadBlob returns the data stored under key. The bool is false when the key
// does not exist.
func (s *Store) LoadBlob(key string) ([]byte, bool, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM saves WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot load %q: %w", key, err)
	}
	return []byte(data), true, nil
}

// DeleteBlob removes key. Deleting a missing key is not an error.
func (s *Store) DeleteBlob(key string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}
