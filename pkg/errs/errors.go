package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrEmptyUpdate        = errors.New("At least one field must be provided")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrNoPermission       = errors.New("Forbidden access")
	ErrNotFound           = errors.New("Resource not found")
	ErrInvalidCredentials = errors.New("Email or password is incorrect")
	ErrAccountDisabled    = errors.New("Account is disabled")
	ErrEmailAlreadyUsed   = errors.New("Email has already been used")
	ErrSKUAlreadyUsed     = errors.New("SKU has already been used")
	ErrTokenExpired       = errors.New("The token is already expired")
	ErrUpstream           = errors.New("Upstream service error")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrEmptyUpdate:        ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrNoPermission:       ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrInvalidCredentials: ErrStatusNotLoggedIn,
	ErrAccountDisabled:    ErrStatusNoPermission,
	ErrEmailAlreadyUsed:   ErrStatusConflict,
	ErrSKUAlreadyUsed:     ErrStatusConflict,
	ErrTokenExpired:       ErrStatusNotLoggedIn,
	ErrUpstream:           ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
