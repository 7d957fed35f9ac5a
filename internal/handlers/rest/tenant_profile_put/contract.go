//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tenant_profile_put_test
package tenant_profile_put

import (
	"context"

	"condotrack/internal/entities"
	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateTenantContact(ctx context.Context, tenantID int64, modify entities.TenantContactModify) (*entities.TenantContext, error)
}
