package hub_client

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	PublishErrUnauthorized = 641
	PublishErrRejected     = 642
	PublishErrTransport    = 643
	PublishErrSigning      = 644
)

type IPublishError interface {
	error
	Code() int
	Status() int // HTTP status for hub rejections, 0 otherwise
	Cause() error
}

type PublishError struct {
	code   int
	status int
	msg    string
	cause  error
}

func (e *PublishError) Code() int {
	return e.code
}

func (e *PublishError) Status() int {
	return e.status
}

func (e *PublishError) Error() string {
	return e.msg
}

func (e *PublishError) Cause() error {
	return e.cause
}

func NewUnauthorizedError(topicIri string) IPublishError {
	return &PublishError{
		code: PublishErrUnauthorized,
		msg:  fmt.Sprintf("publisher token does not authorize updates for topic %s", topicIri),
	}
}

func NewHubRejectedError(status int, body string) IPublishError {
	return &PublishError{
		code:   PublishErrRejected,
		status: status,
		msg:    fmt.Sprintf("hub rejected publish request with status %d: %s", status, body),
	}
}

func NewTransportError(cause error) IPublishError {
	return &PublishError{
		code:  PublishErrTransport,
		msg:   errors.Wrap(cause, "failed to send publish request to hub").Error(),
		cause: cause,
	}
}

func NewSigningError(cause error) IPublishError {
	return &PublishError{
		code:  PublishErrSigning,
		msg:   errors.Wrap(cause, "failed to sign publisher token").Error(),
		cause: cause,
	}
}
