//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=building_delete_test
package building_delete

import (
	"context"

	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBuilding(ctx context.Context, buildingID int64) error
}
