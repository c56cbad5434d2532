package lineprotocol

// Point is a single line-protocol entry: one measurement, its tags and
// fields, and a nanosecond timestamp.
//
// A Point is a plain value from the codec's viewpoint: Decode returns a
// fresh one that shares no memory with the input, and Encode neither
// mutates nor retains its argument.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]Value
	Timestamp   uint64
}

// Equal reports whether p and q describe the same entry.
// Map ordering is irrelevant and float fields compare by bit pattern.
func (p *Point) Equal(q *Point) bool {
	if p.Measurement != q.Measurement || p.Timestamp != q.Timestamp {
		return false
	}
	if len(p.Tags) != len(q.Tags) || len(p.Fields) != len(q.Fields) {
		return false
	}
	for k, v := range p.Tags {
		if qv, ok := q.Tags[k]; !ok || qv != v {
			return false
		}
	}
	for k, v := range p.Fields {
		if qv, ok := q.Fields[k]; !ok || !v.Equal(qv) {
			return false
		}
	}
	return true
}
