package opensonic

import (
	"errors"
	"fmt"
)

// Errors raised before any network I/O.
var (
	// ErrNoCredentials indicates that neither a username/password
	// pair, a salt/token pair, nor a netrc lookup was available when
	// the connection was built.
	ErrNoCredentials = errors.New("no usable credentials")

	// ErrBadArgument indicates a caller-supplied argument violates an
	// operation's documented precondition.
	ErrBadArgument = errors.New("invalid argument")
)

// ErrDecode indicates a response declared as structured content could
// not be parsed, or its envelope/status was missing.
var ErrDecode = errors.New("malformed response")

// Sentinels for the server-reported protocol error codes. A decoded
// *ServerError matches the sentinel for its code via errors.Is.
var (
	ErrGeneric               = errors.New("generic server error")
	ErrMissingParameter      = errors.New("required parameter is missing")
	ErrClientTooOld          = errors.New("incompatible protocol version, client must upgrade")
	ErrServerTooOld          = errors.New("incompatible protocol version, server must upgrade")
	ErrWrongCredentials      = errors.New("wrong username or password")
	ErrTokenAuthNotSupported = errors.New("token authentication not supported for LDAP users")
	ErrNotAuthorized         = errors.New("user is not authorized for the given operation")
	ErrTrialExpired          = errors.New("trial period is over")
	ErrNotFound              = errors.New("requested data not found")
)

var codeSentinels = map[int]error{
	0:  ErrGeneric,
	10: ErrMissingParameter,
	20: ErrClientTooOld,
	30: ErrServerTooOld,
	40: ErrWrongCredentials,
	41: ErrTokenAuthNotSupported,
	50: ErrNotAuthorized,
	60: ErrTrialExpired,
	70: ErrNotFound,
}

// ServerError is a protocol-level failure reported inside an otherwise
// successful HTTP exchange: the envelope carried status "failed" with
// a numeric code and message.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// Is matches the sentinel mapped from the numeric code. Unrecognized
// codes match ErrGeneric only.
func (e *ServerError) Is(target error) bool {
	if s, ok := codeSentinels[e.Code]; ok {
		return target == s
	}
	return target == ErrGeneric
}

func serverError(code int, message string) error {
	return &ServerError{Code: code, Message: message}
}

func argErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadArgument}, args...)...)
}
