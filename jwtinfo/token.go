// Package jwtinfo decodes JSON Web Tokens for inspection. It splits the
// compact serialization into header, body and signature, base64url-decodes
// each section and interprets header and body as JSON. Signatures are never
// verified and claims are never validated.
package jwtinfo

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// segmentEncoding is the base64url alphabet without padding used by the
// compact serialization
var segmentEncoding = base64.RawURLEncoding

var errTrailingData = errors.New("trailing characters after top-level value")

// Token represents a decoded JWT. It is immutable once returned by Parse.
type Token struct {
	header    any
	body      any
	signature []byte
}

// Header returns the decoded header JSON value (usually map[string]any)
func (t *Token) Header() any {
	return t.header
}

// Body returns the decoded body JSON value. It may be any JSON type, e.g. an
// opaque string placeholder for an encrypted payload.
func (t *Token) Body() any {
	return t.body
}

// Signature returns a copy of the raw signature bytes
func (t *Token) Signature() []byte {
	return bytes.Clone(t.signature)
}

// Algorithm returns the header's alg field, or "" if the header is not an
// object or alg is not a string
func (t *Token) Algorithm() string {
	return headerString(t.header, "alg")
}

// Type returns the header's typ field, or "" if absent
func (t *Token) Type() string {
	return headerString(t.header, "typ")
}

func headerString(header any, key string) string {
	obj, ok := header.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

// Parse decodes a token in JWT compact serialization. Sections are processed
// left to right and the first failure is returned as a *ParseError:
// header, then body, then signature, then the check for a fourth fragment.
func Parse[T ~string | ~[]byte](token T) (*Token, error) {
	// Empty fragments are kept, "a..b" yields three sections
	parts := strings.Split(string(token), ".")

	header, derr := decodeJSONSection(parts, 0)
	if derr != nil {
		return nil, newSectionError(SectionHeader, derr)
	}

	body, derr := decodeJSONSection(parts, 1)
	if derr != nil {
		return nil, newSectionError(SectionBody, derr)
	}

	raw, ok := sectionAt(parts, 2)
	if !ok {
		return nil, newSectionError(SectionSignature, NewDecodeError(ErrMissingSection, "", nil))
	}
	signature, derr := decodeSegment(raw)
	if derr != nil {
		return nil, newSectionError(SectionSignature, derr)
	}

	if len(parts) > 3 {
		return nil, &ParseError{}
	}

	return &Token{
		header:    header,
		body:      body,
		signature: signature,
	}, nil
}

func sectionAt(parts []string, i int) (string, bool) {
	if i >= len(parts) {
		return "", false
	}
	return parts[i], true
}

// decodeJSONSection runs the base64url -> UTF-8 -> JSON pipeline on parts[i]
func decodeJSONSection(parts []string, i int) (any, *DecodeError) {
	raw, ok := sectionAt(parts, i)
	if !ok {
		return nil, NewDecodeError(ErrMissingSection, "", nil)
	}

	data, derr := decodeSegment(raw)
	if derr != nil {
		return nil, derr
	}

	if derr := checkUTF8(data); derr != nil {
		return nil, derr
	}

	value, err := decodeJSON(data)
	if err != nil {
		return nil, NewDecodeError(ErrInvalidJSON, err.Error(), err)
	}
	return value, nil
}

// decodeSegment base64url-decodes a single section
func decodeSegment(segment string) ([]byte, *DecodeError) {
	// The decoder silently skips line breaks; they are not part of the alphabet
	if i := strings.IndexAny(segment, "\r\n"); i >= 0 {
		err := base64.CorruptInputError(i)
		return nil, NewDecodeError(ErrInvalidBase64, describeBase64Error(segment, err), err)
	}

	data, err := segmentEncoding.DecodeString(segment)
	if err != nil {
		return nil, NewDecodeError(ErrInvalidBase64, describeBase64Error(segment, err), err)
	}
	return data, nil
}

// describeBase64Error names the offending byte and its offset, or reports a
// truncated final quantum when every byte belongs to the alphabet
func describeBase64Error(segment string, err error) string {
	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		return err.Error()
	}
	offset := int(corrupt)
	if offset < len(segment) && !isBase64URLByte(segment[offset]) {
		return fmt.Sprintf("Invalid byte %d, offset %d.", segment[offset], offset)
	}
	return "Encoded text cannot have a 6-bit remainder."
}

func isBase64URLByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_'
}

// checkUTF8 reports the index of the first invalid or incomplete sequence
func checkUTF8(data []byte) *DecodeError {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			var msg string
			if !utf8.FullRune(data[i:]) {
				msg = fmt.Sprintf("incomplete utf-8 byte sequence from index %d", i)
			} else {
				msg = fmt.Sprintf("invalid utf-8 sequence of 1 bytes from index %d", i)
			}
			return NewDecodeError(ErrInvalidUTF8, msg, errors.New(msg))
		}
		i += size
	}
	return nil
}

// decodeJSON parses exactly one JSON value. Numbers are kept as json.Number so
// that re-rendering does not round large integers.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("unexpected end of JSON input")
		}
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return value, nil
}
