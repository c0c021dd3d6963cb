package auth

import (
	"fmt"
	"time"
)

const (
	AuthErrEmptyClaims        = 631
	AuthErrNoMatchingSelector = 632
	AuthErrSign               = 633
	AuthErrMaxAgeExceeded     = 634
	AuthErrInvalidSelector    = 635
)

type IAuthError interface {
	error
	Code() int
}

type AuthError struct {
	code int
	msg  string
}

func (e *AuthError) Code() int {
	return e.code
}

func (e *AuthError) Error() string {
	return e.msg
}

func NewAuthError(code int, msg string) IAuthError {
	return &AuthError{code, msg}
}

func NewEmptyClaimsError() IAuthError {
	return NewAuthError(AuthErrEmptyClaims, "claims must carry at least one publish or subscribe selector")
}

func NewNoMatchingSelectorError(topicIri string) IAuthError {
	return NewAuthError(AuthErrNoMatchingSelector, fmt.Sprintf("no selector authorizes topic %s", topicIri))
}

func NewSignError(cause error) IAuthError {
	return NewAuthError(AuthErrSign, fmt.Sprintf("failed to encode and sign JWT due to %s", cause.Error()))
}

func NewMaxAgeExceededError(duration time.Duration) IAuthError {
	return NewAuthError(AuthErrMaxAgeExceeded, fmt.Sprintf("max age %s exceeds the cookie lifetime limit of 400 days", duration))
}

func NewInvalidSelectorError(selector string, cause error) IAuthError {
	return NewAuthError(AuthErrInvalidSelector, fmt.Sprintf("invalid selector %s in claim due to %s", selector, cause.Error()))
}
