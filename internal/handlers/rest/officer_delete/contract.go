//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=officer_delete_test
package officer_delete

import (
	"context"

	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteOfficer(ctx context.Context, staffID int64) error
}
