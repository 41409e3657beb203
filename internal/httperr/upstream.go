package httperr

import "errors"

// GenericMessage is shown whenever the remote API fails without a usable
// message field in its response body.
const GenericMessage = "Something went wrong. Please try again."

// UpstreamError carries a failure returned by the remote marketplace API.
// Message is the server's own message field when the body had one.
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericMessage
}

func ErrUpstream(status int, code, message string) error {
	return &UpstreamError{
		StatusCode: status,
		Code:       code,
		Message:    message,
	}
}

func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// UserMessage extracts the toast text for an error: the upstream message when
// present, the business code as-is, otherwise the generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if ue, ok := AsUpstream(err); ok {
		return ue.Error()
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return GenericMessage
}
