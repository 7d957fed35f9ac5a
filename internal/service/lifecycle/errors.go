package lifecycle

import "errors"

var (
	ErrMissingTenant = errors.New("tenant id is required")
	ErrMissingStaff  = errors.New("staff id is required")
	ErrInvalidStatus = errors.New("invalid package status")

	ErrPackageNotFound = errors.New("package not found")
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrConflict        = errors.New("package conflicts with an existing one")
)
