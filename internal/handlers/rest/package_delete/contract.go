//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_delete_test
package package_delete

import (
	"context"

	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeletePackage(ctx context.Context, packageID int64) error
}
