//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=room_delete_test
package room_delete

import (
	"context"

	"condotrack/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteRoom(ctx context.Context, roomID int64) error
}
