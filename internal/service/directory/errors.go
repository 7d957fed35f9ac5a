package directory

import "errors"

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBuildingNotFound = errors.New("building not found")

	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyUpdate  = errors.New("nothing to update")
)
