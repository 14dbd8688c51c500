package format

import "encoding/json"

// JSON stores data as two-space indented JSON.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var _ Format = JSON{}
