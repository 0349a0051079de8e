package splitwise

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrorKind identifies the classified failure category of an API call.
type ErrorKind string

// The closed set of error kinds. Every failure a caller can observe from this
// SDK is one of these; callers distinguish them structurally, never by
// matching message text.
const (
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindAuthorization  ErrorKind = "authorization"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindConflict       ErrorKind = "conflict"
	ErrorKindRateLimit      ErrorKind = "rate_limit"
	ErrorKindAPI            ErrorKind = "api"
	ErrorKindNetwork        ErrorKind = "network"
)

// retryableStatuses is the fixed set of HTTP statuses treated as transient.
var retryableStatuses = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Error is a classified failure from the Splitwise API or its transport.
type Error struct {
	Kind          ErrorKind
	StatusCode    int    // zero for network and authentication-resolution failures
	Message       string
	Endpoint      string
	CorrelationID string
	Details       json.RawMessage // raw error response body, if any
	RetryAfter    *time.Duration  // server wait hint from a 429, nil when absent
	Retryable     bool
	RetryCount    int // attempts consumed before this error surfaced

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("splitwise: %s", e.Kind)

	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}

	if e.Endpoint != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Endpoint)
	}

	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors of the same kind, so callers can write
// errors.Is(err, &splitwise.Error{Kind: splitwise.ErrorKindNotFound}).
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Kind == targetErr.Kind
	}

	return false
}

// Classify maps a non-2xx HTTP status to its typed error. It is a total,
// deterministic function of the status code: the named statuses map to their
// named kinds, everything else becomes ErrorKindAPI with retryability derived
// from the fixed transient-status set.
func Classify(status int, endpoint, correlationID string, body []byte, retryAfter string) *Error {
	e := &Error{
		StatusCode:    status,
		Message:       errorMessage(status, body),
		Endpoint:      endpoint,
		CorrelationID: correlationID,
		Retryable:     retryableStatuses[status],
	}

	if len(body) > 0 {
		e.Details = json.RawMessage(append([]byte(nil), body...))
	}

	switch status {
	case http.StatusUnauthorized:
		e.Kind = ErrorKindAuthentication
	case http.StatusForbidden:
		e.Kind = ErrorKindAuthorization
	case http.StatusNotFound:
		e.Kind = ErrorKindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		e.Kind = ErrorKindValidation
	case http.StatusConflict:
		e.Kind = ErrorKindConflict
	case http.StatusTooManyRequests:
		e.Kind = ErrorKindRateLimit
		e.RetryAfter = parseRetryAfter(retryAfter)
	default:
		e.Kind = ErrorKindAPI
	}

	return e
}

// NewNetworkError classifies a transport-level failure where no HTTP response
// was obtained. Network errors never carry a status code and are always
// retryable.
func NewNetworkError(endpoint, correlationID string, cause error) *Error {
	return &Error{
		Kind:          ErrorKindNetwork,
		Message:       "request failed before a response was received",
		Endpoint:      endpoint,
		CorrelationID: correlationID,
		Retryable:     true,
		cause:         cause,
	}
}

// NewAuthenticationError reports a token source that yielded no usable
// credential. It is not API-originated and carries no status code.
func NewAuthenticationError(endpoint, correlationID string, cause error) *Error {
	return &Error{
		Kind:          ErrorKindAuthentication,
		Message:       "no usable access token",
		Endpoint:      endpoint,
		CorrelationID: correlationID,
		cause:         cause,
	}
}

// parseRetryAfter interprets a Retry-After header value as either delay
// seconds or an HTTP-date. A date in the past yields a zero hint; anything
// unparseable yields nil, which sends the retry policy back to jittered
// backoff.
func parseRetryAfter(value string) *time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return nil
		}

		d := time.Duration(seconds) * time.Second

		return &d
	}

	if t, err := http.ParseTime(value); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}

		return &d
	}

	return nil
}

// splitwiseErrorBody matches the two error envelopes the API emits:
// {"error": "..."} and {"errors": {"base": ["...", ...]}}.
type splitwiseErrorBody struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

// errorMessage extracts a human message from an error response body,
// falling back to the standard status text.
func errorMessage(status int, body []byte) string {
	if len(body) > 0 {
		var parsed splitwiseErrorBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Error != "" {
				return parsed.Error
			}

			if len(parsed.Errors) > 0 {
				fields := make([]string, 0, len(parsed.Errors))
				for field := range parsed.Errors {
					fields = append(fields, field)
				}

				sort.Strings(fields)

				var parts []string
				for _, field := range fields {
					for _, msg := range parsed.Errors[field] {
						parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
					}
				}

				if len(parts) > 0 {
					return strings.Join(parts, "; ")
				}
			}
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}

	return fmt.Sprintf("unexpected status %d", status)
}

// IsRetryable reports whether err is a classified error that may succeed on
// retry.
func IsRetryable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}

	return false
}

// IsAuthentication checks if the error is an authentication failure.
func IsAuthentication(err error) bool {
	return isKind(err, ErrorKindAuthentication)
}

// IsAuthorization checks if the error is an authorization failure.
func IsAuthorization(err error) bool {
	return isKind(err, ErrorKindAuthorization)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsValidation checks if the error is a validation failure.
func IsValidation(err error) bool {
	return isKind(err, ErrorKindValidation)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return isKind(err, ErrorKindConflict)
}

// IsRateLimited checks if the error is a rate-limit rejection.
func IsRateLimited(err error) bool {
	return isKind(err, ErrorKindRateLimit)
}

// IsNetwork checks if the error is a transport-level failure.
func IsNetwork(err error) bool {
	return isKind(err, ErrorKindNetwork)
}

func isKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
