//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tenant_package_logs_get_test
package tenant_package_logs_get

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
	TenantPackageLogs(ctx context.Context, tenantID, packageID int64) (*entities.Package, []entities.PackageLogItem, error)
}
