package query

import (
	"context"
	"fmt"

	"condotrack/internal/entities"
)

// Row caps for the list endpoints. Clients page by narrowing filters, not by
// offset, so each surface gets a hard ceiling instead.
const (
	staffListLimit  = 300
	tenantListLimit = 200
	tenantLogLimit  = 200
	feedLimit       = 400
)

type Service struct {
	ledger  Ledger
	history HistoryLog
}

func New(ledger Ledger, history HistoryLog) *Service {
	return &Service{
		ledger:  ledger,
		history: history,
	}
}

// StaffPackages lists packages across all tenants. Without any date
// constraint the list narrows to today, which is what the front desk
// works from.
func (s *Service) StaffPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageSummary, error) {
	if !filter.HasDateWindow() {
		filter.Period = entities.PeriodToday
	}
	filter.Limit = clampLimit(filter.Limit, staffListLimit)
	filter.Search = ""

	return s.ledger.List(ctx, filter)
}

// PackageDetail returns the joined package view with the latest note from
// its history.
func (s *Service) PackageDetail(ctx context.Context, packageID int64) (*entities.PackageDetail, error) {
	detail, err := s.ledger.GetDetail(ctx, packageID)
	if err != nil {
		return nil, err
	}

	note, err := s.history.LatestNote(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("latest note: %w", err)
	}
	detail.LatestNote = note

	return detail, nil
}

// StatusFeed returns the recent status-change activity across all packages.
func (s *Service) StatusFeed(ctx context.Context, filter entities.LogFilter) ([]entities.LogFeedItem, error) {
	filter.Limit = clampLimit(filter.Limit, feedLimit)

	return s.history.GlobalFeed(ctx, filter)
}

// TenantPackages lists the tenant's own packages. The tenant id comes from
// the authenticated identity, never from request input. No default date
// window: a tenant sees their whole backlog unless they filter.
func (s *Service) TenantPackages(ctx context.Context, tenantID int64, filter entities.PackageFilter) ([]entities.Package, error) {
	filter.Unit = nil
	filter.Limit = clampLimit(filter.Limit, tenantListLimit)

	return s.ledger.ListForTenant(ctx, tenantID, filter)
}

// TenantPackageLogs returns one package's full timeline for its owner.
// Ownership is re-checked against the package row, so a guessed id yields
// ErrForbidden rather than another tenant's history.
func (s *Service) TenantPackageLogs(ctx context.Context, tenantID, packageID int64) (*entities.Package, []entities.PackageLogItem, error) {
	pkg, err := s.ledger.GetByID(ctx, packageID)
	if err != nil {
		return nil, nil, err
	}

	if pkg.TenantID != tenantID {
		return nil, nil, ErrForbidden
	}

	items, err := s.history.ListForPackage(ctx, packageID, tenantLogLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("list package log: %w", err)
	}

	return pkg, items, nil
}

// ArrivedBacklog counts packages still waiting for pickup.
func (s *Service) ArrivedBacklog(ctx context.Context) (int64, error) {
	return s.ledger.CountByStatus(ctx, entities.StatusArrived)
}

func clampLimit(requested, ceiling int) int {
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}
