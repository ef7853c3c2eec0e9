package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

func NotFound(message string) *ErrorWithStatusCode {
	return New(message, http.StatusNotFound)
}

func BadRequest(message string) *ErrorWithStatusCode {
	return New(message, http.StatusBadRequest)
}

func Forbidden(message string) *ErrorWithStatusCode {
	return New(message, http.StatusForbidden)
}

func Unauthorized(message string) *ErrorWithStatusCode {
	return New(message, http.StatusUnauthorized)
}

func IsNotFound(err error) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}

func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// Auth failure modes. Credential-adjacent errors share one generic message
// so responses never reveal whether a username exists; privilege errors are
// specific because the user needs to know to contact an admin.
func InvalidCredentials() *ErrorWithStatusCode {
	return Unauthorized("Invalid credentials")
}

func TokenExpired() *ErrorWithStatusCode {
	return Unauthorized("Token expired, please log in again")
}

func TokenInvalid() *ErrorWithStatusCode {
	return Unauthorized("Invalid token")
}

// AccountNotFound deliberately reads like an invalid token: the account was
// deleted after the token was issued and its former existence must not leak.
func AccountNotFound() *ErrorWithStatusCode {
	return Unauthorized("Invalid token")
}

func AccountNotActive(status string) *ErrorWithStatusCode {
	switch status {
	case "pending":
		return Forbidden("Account pending approval, contact an administrator")
	default:
		return Forbidden("Account deactivated, contact an administrator")
	}
}

// CorruptCredential marks a stored password digest that bcrypt cannot
// parse. Data integrity problem, never user-correctable.
func CorruptCredential() *ErrorWithStatusCode {
	return New("Internal server error", http.StatusInternalServerError)
}
