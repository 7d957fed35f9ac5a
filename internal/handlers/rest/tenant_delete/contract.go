//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tenant_delete_test
package tenant_delete

import (
	"context"

	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteTenant(ctx context.Context, tenantID int64) error
}
