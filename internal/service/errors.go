package service

import "errors"

var (
	ErrTokenCreationFailed    = errors.New("token creation failed")
	ErrUnknownPasswordDigest  = errors.New("unknown password digest")
	ErrMissingPasswordHashKey = errors.New("password hash key is required for the hmac digest")
	ErrVersionIsNotSpecified  = errors.New("build version is not specified")
)

// Business messages returned to the client verbatim.
const (
	MsgInvalidStatus    = "invalid status"
	MsgInvalidID        = "invalid id"
	MsgCategoryNotFound = "category not found"
)
