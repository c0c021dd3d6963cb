package hub_url

import "fmt"

const (
	HubUrlErrInvalidScheme = 621
	HubUrlErrInvalidPath   = 622
	HubUrlErrUnparseable   = 623
)

type IHubUrlError interface {
	error
	Code() int
}

type HubUrlError struct {
	code int
	msg  string
}

func (e *HubUrlError) Code() int {
	return e.code
}

func (e *HubUrlError) Error() string {
	return e.msg
}

func NewHubUrlError(code int, msg string) IHubUrlError {
	return &HubUrlError{code, msg}
}

func NewInvalidSchemeError(scheme string) IHubUrlError {
	return NewHubUrlError(HubUrlErrInvalidScheme, fmt.Sprintf("hub URL scheme must be http or https, got %s", scheme))
}

func NewInvalidPathError(path string) IHubUrlError {
	return NewHubUrlError(HubUrlErrInvalidPath, fmt.Sprintf("hub URL path %s does not end with %s", path, WellKnownPath))
}

func NewUnparseableUrlError(raw string, cause error) IHubUrlError {
	return NewHubUrlError(HubUrlErrUnparseable, fmt.Sprintf("unable to parse hub URL %s due to %s", raw, cause.Error()))
}
