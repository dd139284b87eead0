package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores a slice of strings as a JSON column so the same model
// works on postgres, mysql and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("domain: unsupported StringList column type")
}
