package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrThresholdTooLong = errors.New("threshold value is too long")
	ErrNameRegexTooLong = errors.New("name filter is too long")
	ErrTooManyKnownIDs  = errors.New("too many known ids")
)
