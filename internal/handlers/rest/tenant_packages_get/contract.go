//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tenant_packages_get_test
package tenant_packages_get

import (
	"context"

	"condotrack/internal/entities"
	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TenantPackages(ctx context.Context, tenantID int64, filter entities.PackageFilter) ([]entities.Package, error)
}
