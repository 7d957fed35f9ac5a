//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_get_test
package package_get

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
	PackageDetail(ctx context.Context, packageID int64) (*entities.PackageDetail, error)
}
