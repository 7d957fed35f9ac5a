//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_post_test
package package_post

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
	CreatePackage(ctx context.Context, packageModify entities.PackageModify, staffID int64, note string) (*entities.Package, error)
}
