// Package lineprotocol implements a codec for the InfluxDB line
// protocol: a one-line text format carrying a measurement name,
// string-valued tags, typed field values and a nanosecond timestamp,
// with character-level escape rules that differ per lexical region.
//
// The codec is a pure value transformation with no configuration and no
// internal state; Decode and Encode are safe to call from any number of
// goroutines concurrently.
package lineprotocol

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

var (
	measurementStops = newByteSet(", ")
	tagStops         = newByteSet("=, ")
	fieldKeyStops    = newByteSet("=")
	stringStops      = newByteSet(`"`)
)

// Decode parses a single line-protocol entry. Any number of trailing
// newline bytes are tolerated and stripped; everything else must be one
// entry. The returned point owns its text and shares no memory with data.
//
// Errors are ErrInvalidUTF8 or a *MalformedError; a failed entry yields
// no partial result.
func Decode(data []byte) (*Point, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	for len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil, malformed(ReasonEmpty)
	}
	s := &scanner{buf: data}
	p := &Point{
		Tags:   make(map[string]string),
		Fields: make(map[string]Value),
	}
	measurement, stop, err := s.scanTo(measurementStops)
	if err != nil {
		return nil, err
	}
	p.Measurement = measurement
	if stop == ',' {
		if err := decodeTags(s, p.Tags); err != nil {
			return nil, err
		}
	}
	if err := decodeFields(s, p.Fields); err != nil {
		return nil, err
	}
	ts, err := strconv.ParseUint(string(s.rest()), 10, 64)
	if err != nil {
		return nil, malformed(ReasonBadTimestamp)
	}
	p.Timestamp = ts
	return p, nil
}

// decodeTags consumes the tag region. The key must be terminated by '='
// and the value must not be; a space exits to the field region.
func decodeTags(s *scanner, tags map[string]string) error {
	for {
		key, stop, err := s.scanTo(tagStops)
		if err != nil {
			return err
		}
		if stop != '=' {
			return malformed(ReasonTagWithoutValue)
		}
		value, stop, err := s.scanTo(tagStops)
		if err != nil {
			return err
		}
		if stop == '=' {
			return malformed(ReasonEqualsInTagValue)
		}
		tags[key] = value
		if stop == ' ' {
			return nil
		}
	}
}

// decodeFields consumes the field region. At least one field is always
// present on success. Fields may be separated by ',' or ' '; a space
// after a value exits to the timestamp only when no '=' follows, since
// every further field key ends in one and a timestamp never holds one.
func decodeFields(s *scanner, fields map[string]Value) error {
	for {
		key, _, err := s.scanTo(fieldKeyStops)
		if err != nil {
			return err
		}
		value, stop, err := decodeFieldValue(s)
		if err != nil {
			return err
		}
		fields[key] = value
		if stop == ' ' && bytes.IndexByte(s.rest(), '=') < 0 {
			return nil
		}
	}
}

// decodeFieldValue classifies and parses one field value, returning the
// value and the ',' or ' ' that terminated it.
func decodeFieldValue(s *scanner) (Value, byte, error) {
	c, ok := s.next()
	if !ok {
		return Value{}, 0, malformed(ReasonUnterminatedFieldValue)
	}
	switch c {
	case '"':
		return decodeStringValue(s)
	case ',', ' ':
		return Value{}, 0, malformed(ReasonBadFieldValue)
	}
	tok := []byte{c}
	for {
		c, ok := s.next()
		if !ok {
			return Value{}, 0, malformed(ReasonUnterminatedFieldValue)
		}
		switch c {
		case ',', ' ':
			v, err := floatOrBool(string(tok))
			return v, c, err
		case 'i':
			// The integer suffix: whatever was buffered so far is the
			// integer, and the suffix must be followed directly by a
			// field terminator.
			term, ok := s.next()
			if !ok || (term != ',' && term != ' ') {
				return Value{}, 0, malformed(ReasonBadIntegerSuffix)
			}
			n, err := strconv.ParseInt(string(tok), 10, 64)
			if err != nil {
				return Value{}, 0, malformed(ReasonBadFieldValue)
			}
			return IntValue(n), term, nil
		case '\\':
			// Value-local escape: the backslash is dropped and the next
			// byte is buffered verbatim, whatever it is.
			if c, ok := s.next(); ok {
				tok = append(tok, c)
			}
		default:
			tok = append(tok, c)
		}
	}
}

// decodeStringValue consumes a double-quoted string body. The byte after
// the closing quote is the field terminator and must be ',' or ' '.
func decodeStringValue(s *scanner) (Value, byte, error) {
	body, _, err := s.scanTo(stringStops)
	if err != nil {
		return Value{}, 0, err
	}
	term, ok := s.next()
	if !ok || (term != ',' && term != ' ') {
		return Value{}, 0, malformed(ReasonUnexpectedAfterString)
	}
	return StringValue(body), term, nil
}

// floatOrBool classifies an unquoted, unsuffixed token. The boolean
// literal set is fixed and case-sensitive; anything else must parse as
// a 64-bit float.
func floatOrBool(tok string) (Value, error) {
	switch tok {
	case "t", "T", "true", "True", "TRUE":
		return BoolValue(true), nil
	case "f", "F", "false", "False", "FALSE":
		return BoolValue(false), nil
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Value{}, malformed(ReasonBadFieldValue)
	}
	return FloatValue(x), nil
}
