package catalog

import "errors"

var (
	ErrInvalidFilter  = errors.New("invalid catalog filter")
	ErrInvalidGarment = errors.New("invalid garment")
)
