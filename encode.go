package lineprotocol

import (
	"sort"
	"strconv"
)

// Encode serialises p into its one-line textual form, without a trailing
// newline. Tags and fields are emitted in sorted key order, so the output
// for a given point is deterministic.
//
// Fields are joined by a single space rather than the comma a strict
// InfluxDB reader expects; Decode accepts both, so encoded entries always
// round-trip through this package. Errors are ErrNoFields or an
// *UnsupportedError for a field holding the zero Value.
func Encode(p *Point) ([]byte, error) {
	return AppendPoint(make([]byte, 0, encodedSizeHint(p)), p)
}

// AppendPoint appends the encoding of p to buf and returns the extended
// buffer.
func AppendPoint(buf []byte, p *Point) ([]byte, error) {
	if len(p.Fields) == 0 {
		return nil, ErrNoFields
	}
	buf = appendEscaped(buf, p.Measurement, keyEscapes)
	if len(p.Tags) > 0 {
		keys := make([]string, 0, len(p.Tags))
		for k := range p.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			buf = append(buf, ',')
			buf = appendEscaped(buf, k, keyEscapes)
			buf = append(buf, '=')
			buf = appendEscaped(buf, p.Tags[k], keyEscapes)
		}
	}
	buf = append(buf, ' ')
	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendEscaped(buf, k, keyEscapes)
		buf = append(buf, '=')
		var err error
		buf, err = appendFieldValue(buf, p.Fields[k])
		if err != nil {
			return nil, err
		}
	}
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, p.Timestamp, 10)
	return buf, nil
}

func appendFieldValue(buf []byte, v Value) ([]byte, error) {
	switch v.Kind() {
	case Int:
		buf = strconv.AppendInt(buf, v.IntV(), 10)
		return append(buf, 'i'), nil
	case Float:
		return strconv.AppendFloat(buf, v.FloatV(), 'g', -1, 64), nil
	case Bool:
		if v.BoolV() {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case String:
		buf = append(buf, '"')
		buf = appendEscaped(buf, v.StringV(), stringEscapes)
		return append(buf, '"'), nil
	}
	return nil, &UnsupportedError{Reason: "non-scalar field value"}
}

// encodedSizeHint estimates the encoded length of p so that Encode can
// usually get by with a single allocation. Escaping can still grow the
// buffer beyond the hint; that's fine, append handles it.
func encodedSizeHint(p *Point) int {
	n := len(p.Measurement) + 1 + 20
	for k, v := range p.Tags {
		n += len(k) + len(v) + 2
	}
	for k, v := range p.Fields {
		n += len(k) + 2
		if v.Kind() == String {
			n += len(v.str) + 2
		} else {
			n += 24
		}
	}
	return n
}
