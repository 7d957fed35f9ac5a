//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=directory_test
package directory

import (
	"context"

	"condotrack/internal/entities"
)

type Repository interface {
	TenantByUserID(ctx context.Context, userID int64) (*entities.TenantContext, error)
	TenantByID(ctx context.Context, tenantID int64) (*entities.TenantContext, error)
	StaffByUserID(ctx context.Context, userID int64) (*entities.Staff, error)
	UpdateTenantContact(ctx context.Context, tenantID int64, modify entities.TenantContactModify) error

	TenantIDsByRoom(ctx context.Context, roomID int64) ([]int64, error)
	TenantIDsByBuilding(ctx context.Context, buildingID int64) ([]int64, error)

	DeleteTenant(ctx context.Context, tenantID int64) (int64, error)
	DeleteStaff(ctx context.Context, staffID int64) (int64, error)
	DeleteUserAccount(ctx context.Context, userID int64) error
	DeleteRoom(ctx context.Context, roomID int64) error
	DeleteRoomsByBuilding(ctx context.Context, buildingID int64) error
	DeleteBuilding(ctx context.Context, buildingID int64) error
}

type PackageLedger interface {
	DeleteByTenant(ctx context.Context, tenantID int64) (int64, error)
	DeleteByReceivingStaff(ctx context.Context, staffID int64) (int64, error)
}

type HistoryLog interface {
	DeleteForTenant(ctx context.Context, tenantID int64) error
	DeleteByStaff(ctx context.Context, staffID int64) error
	DeleteForStaffPackages(ctx context.Context, staffID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
