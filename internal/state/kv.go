package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/botonera/internal/db"
)

// keySelectedSection is the slot holding the last selected section reference.
const keySelectedSection = "selectedSectionRef"

func getValue(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow(`SELECT value FROM kv_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dbutil.NullStringValue(value), true, nil
}

func setValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO kv_state (key, value, updated_at)
		VALUES (?, ?, strftime('%s', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	return err
}
