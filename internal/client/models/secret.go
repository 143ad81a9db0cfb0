package models

import (
	"github.com/goccy/go-json"
)

const hexDigits = "0123456789abcdef"

// Secret is a password kept as bytes so that it can be wiped after use. It
// is encoded for the wire without passing through a Go string.
type Secret []byte

// Quote encodes s as a JSON string into a fresh slice owned by the caller.
// The slice is sized up front so no partial copy is left behind by append.
func (s Secret) Quote() json.RawMessage {
	out := make([]byte, 0, len(s)*6+2)
	out = append(out, '"')
	for _, c := range s {
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', c)
		case c < 0x20:
			out = append(out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			out = append(out, c)
		}
	}
	return append(out, '"')
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return s.Quote(), nil
}

func (s *Secret) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Secret(v)
	return nil
}
