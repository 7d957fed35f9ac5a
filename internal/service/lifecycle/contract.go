//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"condotrack/internal/entities"
)

type Ledger interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	UpdateStatus(ctx context.Context, id int64, status entities.PackageStatus, stamp entities.PickupStamp) (*entities.Package, error)
	Delete(ctx context.Context, id int64) error
}

type HistoryLog interface {
	Append(ctx context.Context, entry *entities.StatusLogEntry) (*entities.StatusLogEntry, error)
	DeleteForPackage(ctx context.Context, packageID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
