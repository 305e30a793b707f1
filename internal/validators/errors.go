package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not admin API DTOs.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidField wraps the first violated rule of a DTO.
	ErrInvalidField = errors.New("invalid field")
)
