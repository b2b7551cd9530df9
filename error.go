package enumset

import "errors"

var (
	ErrBadConfig         = errors.New("bad config")
	ErrInvalidEnumValue  = errors.New("invalid enum value")
	ErrInvalidMemberName = errors.New("invalid member name")
)
