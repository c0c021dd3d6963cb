package topic_selector

import "fmt"

const (
	SelectorErrInvalidTemplate = 601
)

type ISelectorError interface {
	error
	Code() int
}

type SelectorError struct {
	code int
	msg  string
}

func (e *SelectorError) Code() int {
	return e.code
}

func (e *SelectorError) Error() string {
	return e.msg
}

func NewSelectorError(code int, msg string) ISelectorError {
	return &SelectorError{code, msg}
}

func NewInvalidTemplateError(template string, cause error) ISelectorError {
	return NewSelectorError(SelectorErrInvalidTemplate, fmt.Sprintf("invalid URI template %s due to %s", template, cause.Error()))
}
