//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_patch_test
package package_patch

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
	ChangeStatus(ctx context.Context, packageID int64, status *entities.PackageStatus, note string, staffID int64) (*entities.Package, error)
}
