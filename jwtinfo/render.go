package jwtinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Part selects what Render outputs
type Part int

const (
	PartBody   Part = iota // body (claims) alone
	PartHeader             // header alone
	PartFull               // {"header": ..., "claims": ...}
)

// String returns the part name
func (p Part) String() string {
	switch p {
	case PartBody:
		return "body"
	case PartHeader:
		return "header"
	case PartFull:
		return "full"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// fullView is the combined rendering of a token
type fullView struct {
	Header any `json:"header"`
	Claims any `json:"claims"`
}

// Render returns the selected part as JSON text without a trailing newline.
// Object keys are sorted and HTML characters are left unescaped. When pretty
// is set the output is indented by two spaces.
func (t *Token) Render(part Part, pretty bool) ([]byte, error) {
	var value any
	switch part {
	case PartBody:
		value = t.body
	case PartHeader:
		value = t.header
	case PartFull:
		value = fullView{Header: t.header, Claims: t.body}
	default:
		return nil, fmt.Errorf("unknown part %v", part)
	}
	return encodeJSON(value, pretty)
}

// MarshalJSON renders the token as {"header": ..., "claims": ...}
func (t *Token) MarshalJSON() ([]byte, error) {
	return t.Render(PartFull, false)
}

func encodeJSON(value any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
