package query

import (
	"errors"

	"condotrack/internal/service/lifecycle"
)

var (
	ErrPackageNotFound = lifecycle.ErrPackageNotFound

	ErrForbidden = errors.New("package belongs to another tenant")
)
