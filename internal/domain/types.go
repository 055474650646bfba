package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Stringish tolerates string, number or bool JSON values and keeps them as text.
// Backend ids arrive as either numbers or strings depending on the record.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	default:
		*s = Stringish(strings.Trim(string(b), `"`))
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

// Amount is a money value that may be encoded as a JSON number or a numeric string.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" || len(b) == 0 {
		*a = 0
		return nil
	}
	raw := strings.Trim(string(b), `"`)
	if strings.TrimSpace(raw) == "" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }
