package ir

import "errors"

var (
	ErrType = errors.New("type error")
)
