//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=login_post_test
package login_post

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
	Login(ctx context.Context, username, password string) (string, *entities.UserAccount, error)
}
