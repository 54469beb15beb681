package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedName is one translation of a dictionary entry's display name.
type LocalizedName struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// LocalizedNames is the full translation set of a dictionary entry, stored
// as a jsonb array of {language, value} objects.
type LocalizedNames []LocalizedName

// Value implements driver.Valuer so GORM can write the set as a jsonb
// parameter. A nil set encodes as an empty array to satisfy not-null
// columns.
func (ln LocalizedNames) Value() (driver.Value, error) {
	if ln == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ln)
}

// Scan implements sql.Scanner so GORM can read the column back.
func (ln *LocalizedNames) Scan(src interface{}) error {
	if src == nil {
		*ln = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, ln)
	case string:
		return json.Unmarshal([]byte(v), ln)
	default:
		return fmt.Errorf("LocalizedNames.Scan: unsupported source type %T", src)
	}
}

// GormDataType tells GORM the column type for schema migration.
func (LocalizedNames) GormDataType() string {
	return "jsonb"
}
