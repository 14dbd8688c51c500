package backends

import "errors"

var (
	ErrUnknownEngine = errors.New("unknown storage engine")
	ErrNoDir         = errors.New("storage directory is empty")
)
