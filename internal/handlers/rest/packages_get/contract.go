//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_get_test
package packages_get

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
	StaffPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageSummary, error)
}
