package lineprotocol

import (
	"os"
	"regexp"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// The corpus is a declarative decode suite: each case either decodes to
// the given point (and optionally survives a round trip) or fails with
// the given error text.
type corpusCase struct {
	Name      string       `yaml:"name"`
	Input     string       `yaml:"input"`
	Point     *corpusPoint `yaml:"point"`
	Error     string       `yaml:"error"`
	RoundTrip bool         `yaml:"roundtrip"`
}

type corpusPoint struct {
	Measurement string                 `yaml:"measurement"`
	Tags        map[string]string      `yaml:"tags"`
	Fields      map[string]corpusValue `yaml:"fields"`
	Timestamp   uint64                 `yaml:"timestamp"`
}

type corpusValue struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

func (cp *corpusPoint) point(c *qt.C) *Point {
	p := &Point{
		Measurement: cp.Measurement,
		Tags:        make(map[string]string),
		Fields:      make(map[string]Value),
		Timestamp:   cp.Timestamp,
	}
	for k, v := range cp.Tags {
		p.Tags[k] = v
	}
	for k, v := range cp.Fields {
		switch v.Type {
		case "int":
			n, err := strconv.ParseInt(v.Value, 10, 64)
			c.Assert(err, qt.IsNil)
			p.Fields[k] = IntValue(n)
		case "float":
			x, err := strconv.ParseFloat(v.Value, 64)
			c.Assert(err, qt.IsNil)
			p.Fields[k] = FloatValue(x)
		case "bool":
			b, err := strconv.ParseBool(v.Value)
			c.Assert(err, qt.IsNil)
			p.Fields[k] = BoolValue(b)
		case "string":
			p.Fields[k] = StringValue(v.Value)
		default:
			c.Fatalf("corpus field %q has unknown type %q", k, v.Type)
		}
	}
	return p
}

func TestCorpus(t *testing.T) {
	c := qt.New(t)
	data, err := os.ReadFile("testdata/corpus.yaml")
	c.Assert(err, qt.IsNil)
	var cases []corpusCase
	c.Assert(yaml.Unmarshal(data, &cases), qt.IsNil)
	c.Assert(cases, qt.Not(qt.HasLen), 0)

	for _, test := range cases {
		test := test
		c.Run(test.Name, func(c *qt.C) {
			p, err := Decode([]byte(test.Input))
			if test.Error != "" {
				c.Assert(err, qt.ErrorMatches, ".*"+regexp.QuoteMeta(test.Error))
				return
			}
			c.Assert(err, qt.IsNil)
			want := test.Point.point(c)
			if diff := cmp.Diff(want, p, valueComparer); diff != "" {
				c.Fatalf("point mismatch (-want +got):\n%s", diff)
			}
			if !test.RoundTrip {
				return
			}
			encoded, err := Encode(p)
			c.Assert(err, qt.IsNil)
			q, err := Decode(encoded)
			c.Assert(err, qt.IsNil)
			c.Assert(p.Equal(q), qt.IsTrue, qt.Commentf("re-encoded as %q", encoded))
		})
	}
}