package topic

import "fmt"

const (
	TopicErrInvalidTemplate = 611
	TopicErrExpansion       = 612
	TopicErrInvalidIri      = 613
)

type ITopicError interface {
	error
	Code() int
}

type TopicError struct {
	code int
	msg  string
}

func (e *TopicError) Code() int {
	return e.code
}

func (e *TopicError) Error() string {
	return e.msg
}

func NewTopicError(code int, msg string) ITopicError {
	return &TopicError{code, msg}
}

func NewTopicInvalidTemplateError(template string, cause error) ITopicError {
	return NewTopicError(TopicErrInvalidTemplate, fmt.Sprintf("invalid topic template %s due to %s", template, cause.Error()))
}

func NewTopicExpansionError(template string, cause error) ITopicError {
	return NewTopicError(TopicErrExpansion, fmt.Sprintf("unable to expand topic template %s due to %s", template, cause.Error()))
}

func NewTopicInvalidIriError(iri string, cause error) ITopicError {
	return NewTopicError(TopicErrInvalidIri, fmt.Sprintf("expanded topic IRI %s is not a valid URL due to %s", iri, cause.Error()))
}
