package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Signature is the ordered list of biometric samples captured at enrollment.
// It is stored as a JSON array of numbers.
type Signature []float64

// Value implements driver.Valuer.
func (s Signature) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]float64(s))
	if err != nil {
		return nil, fmt.Errorf("encode signature: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Signature) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("scan signature: unsupported type %T", src)
	}

	var samples []float64
	if err := json.Unmarshal(raw, &samples); err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	*s = samples
	return nil
}
