package pkgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"condotrack/internal/entities"
	"condotrack/internal/repository"
	"condotrack/internal/service/lifecycle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const dateLayout = "2006-01-02"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	packageModifyDB := FromDomainModify(&packageModify)

	query := `
		INSERT INTO package (tenant_id, received_by_staff_id, tracking_no, carrier, sender_name, arrived_at, picked_up_at, current_status)
		VALUES ($1, $2, $3, $4, $5, coalesce($6, now()), $7, $8)
		RETURNING package_id, tenant_id, received_by_staff_id, tracking_no, carrier, sender_name, current_status, arrived_at, picked_up_at
	`

	var packageDB PackageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		packageModifyDB.TenantID,
		packageModifyDB.ReceivedByStaffID,
		packageModifyDB.TrackingNo,
		packageModifyDB.Carrier,
		packageModifyDB.SenderName,
		packageModifyDB.ArrivedAt,
		packageModifyDB.PickedUpAt,
		packageModifyDB.CurrentStatus,
	).Scan(
		&packageDB.ID,
		&packageDB.TenantID,
		&packageDB.ReceivedByStaffID,
		&packageDB.TrackingNo,
		&packageDB.Carrier,
		&packageDB.SenderName,
		&packageDB.CurrentStatus,
		&packageDB.ArrivedAt,
		&packageDB.PickedUpAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, lifecycle.ErrTenantNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, lifecycle.ErrConflict
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Package, error) {
	query := `
		SELECT package_id, tenant_id, received_by_staff_id, tracking_no, carrier, sender_name, current_status, arrived_at, picked_up_at
		FROM package
		WHERE package_id = $1
	`

	var packageDB PackageDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&packageDB.ID,
		&packageDB.TenantID,
		&packageDB.ReceivedByStaffID,
		&packageDB.TrackingNo,
		&packageDB.Carrier,
		&packageDB.SenderName,
		&packageDB.CurrentStatus,
		&packageDB.ArrivedAt,
		&packageDB.PickedUpAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) GetDetail(ctx context.Context, id int64) (*entities.PackageDetail, error) {
	query := `
		SELECT
			p.package_id,
			p.tenant_id,
			p.tracking_no,
			p.carrier,
			p.sender_name,
			t.full_name,
			b.building_code,
			r.room_no,
			p.current_status,
			p.arrived_at,
			p.picked_up_at,
			s.full_name
		FROM package p
		JOIN tenant t ON p.tenant_id = t.tenant_id
		JOIN room r ON t.room_id = r.room_id
		JOIN building b ON r.building_id = b.building_id
		LEFT JOIN staff s ON p.received_by_staff_id = s.staff_id
		WHERE p.package_id = $1
	`

	var detailDB PackageDetailDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&detailDB.ID,
		&detailDB.TenantID,
		&detailDB.TrackingNo,
		&detailDB.Carrier,
		&detailDB.SenderName,
		&detailDB.TenantName,
		&detailDB.BuildingCode,
		&detailDB.RoomNo,
		&detailDB.CurrentStatus,
		&detailDB.ArrivedAt,
		&detailDB.PickedUpAt,
		&detailDB.HandledByStaff,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getdetail error: %w", err)
	}

	return ToDetailDomain(&detailDB), nil
}

// UpdateStatus applies the status and the pickup-timestamp action decided by
// the transition engine. The pickup column is only touched when the stamp says
// so, which is what keeps the RETURNED transition from disturbing it.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status entities.PackageStatus,
	stamp entities.PickupStamp,
) (*entities.Package, error) {
	builder := qb.
		Update("package").
		Set("current_status", status.String())

	switch stamp {
	case entities.PickupSet:
		builder = builder.Set("picked_up_at", sq.Expr("now()"))
	case entities.PickupClear:
		builder = builder.Set("picked_up_at", nil)
	case entities.PickupKeep:
	}

	builder = builder.
		Where(sq.Eq{"package_id": id}).
		Suffix("RETURNING package_id, tenant_id, received_by_staff_id, tracking_no, carrier, sender_name, current_status, arrived_at, picked_up_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository updatestatus error: %w", err)
	}

	var packageDB PackageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&packageDB.ID,
		&packageDB.TenantID,
		&packageDB.ReceivedByStaffID,
		&packageDB.TrackingNo,
		&packageDB.Carrier,
		&packageDB.SenderName,
		&packageDB.CurrentStatus,
		&packageDB.ArrivedAt,
		&packageDB.PickedUpAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository updatestatus error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM package WHERE package_id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected package repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrPackageNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageSummary, error) {
	builder := qb.
		Select(
			"p.package_id",
			"p.tracking_no",
			"p.carrier",
			"t.full_name",
			"b.building_code",
			"r.room_no",
			"p.current_status",
			"p.arrived_at",
			"p.picked_up_at",
		).
		From("package p").
		Join("tenant t ON p.tenant_id = t.tenant_id").
		Join("room r ON t.room_id = r.room_id").
		Join("building b ON r.building_id = b.building_id")

	builder = applyPackageFilter(builder, filter)

	builder = builder.
		OrderBy("p.arrived_at DESC").
		Limit(uint64(filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}
	defer rows.Close()

	summaries := make([]entities.PackageSummary, 0, 16)
	for rows.Next() {
		var summaryDB PackageSummaryDB
		err := rows.Scan(
			&summaryDB.ID,
			&summaryDB.TrackingNo,
			&summaryDB.Carrier,
			&summaryDB.TenantName,
			&summaryDB.BuildingCode,
			&summaryDB.RoomNo,
			&summaryDB.CurrentStatus,
			&summaryDB.ArrivedAt,
			&summaryDB.PickedUpAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected package repository list error: %w", err)
		}
		summaries = append(summaries, ToSummaryDomain(&summaryDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	return summaries, nil
}

func (r *Repository) ListForTenant(ctx context.Context, tenantID int64, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := qb.
		Select(
			"p.package_id",
			"p.tenant_id",
			"p.received_by_staff_id",
			"p.tracking_no",
			"p.carrier",
			"p.sender_name",
			"p.current_status",
			"p.arrived_at",
			"p.picked_up_at",
		).
		From("package p").
		Where(sq.Eq{"p.tenant_id": tenantID})

	builder = applyPackageFilter(builder, filter)

	builder = builder.
		OrderBy("p.arrived_at DESC").
		Limit(uint64(filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository listfortenant error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository listfortenant error: %w", err)
	}
	defer rows.Close()

	packages := make([]entities.Package, 0, 16)
	for rows.Next() {
		var packageDB PackageDB
		err := rows.Scan(
			&packageDB.ID,
			&packageDB.TenantID,
			&packageDB.ReceivedByStaffID,
			&packageDB.TrackingNo,
			&packageDB.Carrier,
			&packageDB.SenderName,
			&packageDB.CurrentStatus,
			&packageDB.ArrivedAt,
			&packageDB.PickedUpAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected package repository listfortenant error: %w", err)
		}
		packages = append(packages, *ToDomain(&packageDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected package repository listfortenant error: %w", err)
	}

	return packages, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.PackageStatus) (int64, error) {
	query := `
		SELECT count(*) FROM package WHERE current_status = $1
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected package repository countbystatus error: %w", err)
	}

	return count, nil
}

func (r *Repository) DeleteByTenant(ctx context.Context, tenantID int64) (int64, error) {
	query := `
		DELETE FROM package WHERE tenant_id = $1
	`
	result, err := r.querier.Exec(ctx, query, tenantID)
	if err != nil {
		return 0, fmt.Errorf("unexpected package repository deletebytenant error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) DeleteByReceivingStaff(ctx context.Context, staffID int64) (int64, error) {
	query := `
		DELETE FROM package WHERE received_by_staff_id = $1
	`
	result, err := r.querier.Exec(ctx, query, staffID)
	if err != nil {
		return 0, fmt.Errorf("unexpected package repository deletebyreceivingstaff error: %w", err)
	}

	return result.RowsAffected(), nil
}

// applyPackageFilter composes the optional conditions with AND, always binding
// user-supplied values as parameters. An explicit start/end range takes
// precedence over a single date, which takes precedence over a named period.
func applyPackageFilter(builder sq.SelectBuilder, filter entities.PackageFilter) sq.SelectBuilder {
	switch {
	case filter.StartDate != nil:
		builder = builder.Where(sq.Expr("p.arrived_at::date >= ?::date", filter.StartDate.Format(dateLayout)))
		if filter.EndDate != nil {
			builder = builder.Where(sq.Expr("p.arrived_at::date <= ?::date", filter.EndDate.Format(dateLayout)))
		} else {
			// An open-ended range still stops at today.
			builder = builder.Where(sq.Expr("p.arrived_at::date <= current_date"))
		}
	case filter.Date != nil:
		builder = builder.Where(sq.Expr("p.arrived_at::date = ?::date", filter.Date.Format(dateLayout)))
	case filter.Period == entities.PeriodToday:
		builder = builder.Where(sq.Expr("p.arrived_at::date = current_date"))
	case filter.Period == entities.PeriodLast7:
		builder = builder.Where(sq.Expr("p.arrived_at::date >= (current_date - interval '6 days')"))
	case filter.Period == entities.PeriodLast30:
		builder = builder.Where(sq.Expr("p.arrived_at::date >= (current_date - interval '29 days')"))
	case filter.Period == entities.PeriodMonth:
		builder = builder.Where(sq.Expr("date_trunc('month', p.arrived_at) = date_trunc('month', current_date)"))
	}

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"p.current_status": filter.Status.String()})
	}

	if filter.Unit != nil {
		builder = builder.Where(sq.Expr("(b.building_code || r.room_no) = ?", *filter.Unit))
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		builder = builder.Where(sq.Expr(
			`(lower(coalesce(p.tracking_no, '')) LIKE ?
				OR lower(coalesce(p.carrier, '')) LIKE ?
				OR lower(coalesce(p.sender_name, '')) LIKE ?
				OR lower(p.current_status) LIKE ?)`,
			pattern, pattern, pattern, pattern,
		))
	}

	return builder
}
