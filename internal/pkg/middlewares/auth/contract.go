package auth

import (
	"context"

	"condotrack/internal/entities"
	"condotrack/internal/pkg/token"
	"condotrack/pkg/logger"
)

type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

type StaffResolver interface {
	StaffProfile(ctx context.Context, userID int64) (*entities.Staff, error)
}

type TenantResolver interface {
	TenantContext(ctx context.Context, userID int64) (*entities.TenantContext, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
