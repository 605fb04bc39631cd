// value.go defines the tagged cell container used by every result row.
package dataset

import (
	"encoding/json"
	"strconv"
)

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
)

// Value is a single cell: either text or a number.
type Value struct {
	Kind Kind
	Text string
	Num  float64
}

// Text wraps a string cell.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number wraps a numeric cell.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Int wraps an integer cell.
func Int(i int) Value { return Number(float64(i)) }

// IsNumber reports whether the cell is numeric.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// String renders the cell without any presentation formatting.
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Text
}

// MarshalJSON emits a JSON number for numeric cells and a JSON string otherwise.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindNumber {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Kind == KindNumber {
		return v.Num, nil
	}
	return v.Text, nil
}

// Row maps a column name to its cell.
type Row map[string]Value

// Values returns the row's cells in the given column order. Missing
// columns yield an empty text cell.
func (r Row) Values(columns []string) []Value {
	out := make([]Value, len(columns))
	for i, c := range columns {
		v, ok := r[c]
		if !ok {
			v = Text("")
		}
		out[i] = v
	}
	return out
}
