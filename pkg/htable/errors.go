package htable

import "errors"

var (
	ErrTableFull      = errors.New("htable: table is full")
	ErrBadCapacity    = errors.New("htable: capacity must be greater than zero")
	ErrDegenerateStep = errors.New("htable: double hashing requires a capacity greater than one")
	ErrBadMode        = errors.New("htable: unknown addressing mode")
)
