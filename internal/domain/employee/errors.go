package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrInsufficientPermission = errors.New("insufficient permissions")
)
