package ir

import (
	"errors"
)

var (
	ErrEmptyRecord = errors.New("record requires a label")
	ErrPath        = errors.New("path error")
	ErrNoValue     = errors.New("no value at path")
	ErrNoGoValue   = errors.New("no ir representation")
)
