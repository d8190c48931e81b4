package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Message role constants for call transcripts
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// CarPreferences is the vehicle-preference sub-record stored as a JSONB
// column. All fields are optional; the zero value means nothing captured yet.
type CarPreferences struct {
	Make   *string `json:"make,omitempty"`
	Model  *string `json:"model,omitempty"`
	Budget *string `json:"budget,omitempty"`
}

// Empty reports whether no preference field has been captured.
func (p CarPreferences) Empty() bool {
	return p.Make == nil && p.Model == nil && p.Budget == nil
}

// Value implements the driver.Valuer interface for CarPreferences
func (p CarPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for CarPreferences
func (p *CarPreferences) Scan(value interface{}) error {
	if value == nil {
		*p = CarPreferences{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for CarPreferences")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*p = CarPreferences{}
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// TranscriptEntry is a single role/content pair in a call transcript.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered list of turns stored as a JSONB array.
type Transcript []TranscriptEntry

// Value implements the driver.Valuer interface for Transcript
func (t Transcript) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal(Transcript{})
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface for Transcript
func (t *Transcript) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for Transcript")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*t = nil
		return nil
	}

	return json.Unmarshal(bytes, t)
}
