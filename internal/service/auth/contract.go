//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"condotrack/internal/entities"
)

type Accounts interface {
	GetByUsername(ctx context.Context, username string) (*entities.UserAccount, error)
}

type TokenIssuer interface {
	Issue(userID int64, role entities.Role) (string, error)
}
