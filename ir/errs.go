package ir

import (
	"errors"
)

var (
	ErrPath    = errors.New("path error")
	ErrBridge  = errors.New("unsupported value")
	ErrBadType = errors.New("unrecognized node type")
)
