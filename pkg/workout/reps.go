package workout

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reps is a rep prescription. Authors write it either as a number (12) or
// as free text ("6-8", "500m", "max"), so it unmarshals from both scalar
// shapes and keeps the raw text for downstream parsing. The zero value
// means "not specified".
type Reps struct {
	Raw string
}

// String returns the raw prescription text.
func (r Reps) String() string { return r.Raw }

// IsZero reports whether no rep prescription was given.
func (r Reps) IsZero() bool { return r.Raw == "" }

// UnmarshalJSON accepts a JSON number, string, or null.
func (r *Reps) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		r.Raw = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.Raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	r.Raw = n.String()
	return nil
}

// MarshalJSON writes the prescription back as a bare number when it is one,
// otherwise as a string.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.Raw == "" {
		return []byte("null"), nil
	}
	var n json.Number = json.Number(r.Raw)
	if _, err := n.Int64(); err == nil {
		return []byte(r.Raw), nil
	}
	return json.Marshal(r.Raw)
}

// UnmarshalYAML accepts any YAML scalar.
func (r *Reps) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		r.Raw = ""
		return nil
	}
	r.Raw = value.Value
	return nil
}
