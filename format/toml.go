package format

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOML stores data as TOML. Top-level values must be table-shaped
// (structs or maps); TOML has no top-level arrays or scalars.
type TOML struct{}

func (TOML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (TOML) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

var _ Format = TOML{}
