package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type    Type             `json:"type"`
	Line    int              `json:"line,omitempty"`
	Compact bool             `json:"compact,omitempty"`
	Fields  map[string]*Node `json:"fields,omitempty"`
	Values  []*Node          `json:"values,omitempty"`
}

// MarshalJSON encodes the node itself rather than the data it holds, so
// that a tree survives a trip through JSON with its types and line
// information intact.  See ToAny for the plain data view.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Line:    y.Line,
		Compact: y.Compact,
		Fields:  y.Fields,
		Values:  y.Values,
	}
	if y.Type == ValueType {
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Line = tmp.Line
	y.Compact = tmp.Compact
	y.String = tmp.String
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	if y.Type == ValueType && (len(y.Fields) != 0 || len(y.Values) != 0) {
		return fmt.Errorf("value node with children")
	}
	for k, v := range y.Fields {
		if v == nil {
			return fmt.Errorf("null field %q", k)
		}
	}
	for i, v := range y.Values {
		if v == nil {
			return fmt.Errorf("null value at %d", i)
		}
	}
	return nil
}
