//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=query_test
package query

import (
	"context"

	"condotrack/internal/entities"
)

type Ledger interface {
	List(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageSummary, error)
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	GetDetail(ctx context.Context, id int64) (*entities.PackageDetail, error)
	ListForTenant(ctx context.Context, tenantID int64, filter entities.PackageFilter) ([]entities.Package, error)
	CountByStatus(ctx context.Context, status entities.PackageStatus) (int64, error)
}

type HistoryLog interface {
	LatestNote(ctx context.Context, packageID int64) (string, error)
	ListForPackage(ctx context.Context, packageID int64, limit int) ([]entities.PackageLogItem, error)
	GlobalFeed(ctx context.Context, filter entities.LogFilter) ([]entities.LogFeedItem, error)
}
