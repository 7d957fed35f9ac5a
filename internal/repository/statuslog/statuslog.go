package statuslog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"condotrack/internal/entities"
	"condotrack/internal/repository"
	"condotrack/internal/service/lifecycle"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const dateLayout = "2006-01-02"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append writes one history row. status_time comes from the database
// clock so entries within a transaction stay ordered.
func (r *Repository) Append(ctx context.Context, entry *entities.StatusLogEntry) (*entities.StatusLogEntry, error) {
	query := `
		INSERT INTO package_status_log (package_id, updated_by_staff_id, status, note)
		VALUES ($1, $2, $3, $4)
		RETURNING log_id, package_id, updated_by_staff_id, status, note, status_time;
	`

	var note *string
	if entry.Note != "" {
		note = &entry.Note
	}

	var row StatusLogEntryDB
	err := r.querier.QueryRow(ctx, query,
		entry.PackageID,
		entry.StaffID,
		string(entry.Status),
		note,
	).Scan(
		&row.ID,
		&row.PackageID,
		&row.StaffID,
		&row.Status,
		&row.Note,
		&row.StatusTime,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, lifecycle.ErrPackageNotFound
		}
		return nil, fmt.Errorf("append status log: %w", err)
	}

	return ToDomain(&row), nil
}

// LatestNote returns the note of the most recent log entry for the
// package, or an empty string when the package has no entries yet.
func (r *Repository) LatestNote(ctx context.Context, packageID int64) (string, error) {
	query := `
		SELECT note
		FROM package_status_log
		WHERE package_id = $1
		ORDER BY status_time DESC, log_id DESC
		LIMIT 1;
	`

	var note *string
	err := r.querier.QueryRow(ctx, query, packageID).Scan(&note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("latest note: %w", err)
	}

	if note == nil {
		return "", nil
	}

	return *note, nil
}

// ListForPackage returns the package history newest-first. Entries
// written by deleted staff keep a placeholder author name.
func (r *Repository) ListForPackage(ctx context.Context, packageID int64, limit int) ([]entities.PackageLogItem, error) {
	builder := qb.
		Select(
			"psl.status",
			"psl.note",
			"psl.status_time",
			"coalesce(s.full_name, 'Unknown')",
		).
		From("package_status_log psl").
		LeftJoin("staff s ON s.staff_id = psl.updated_by_staff_id").
		Where(sq.Eq{"psl.package_id": packageID}).
		OrderBy("psl.status_time DESC", "psl.log_id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build package log query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list package log: %w", err)
	}
	defer rows.Close()

	items := make([]entities.PackageLogItem, 0)
	for rows.Next() {
		var row PackageLogItemDB
		if err := rows.Scan(
			&row.Status,
			&row.Note,
			&row.StatusTime,
			&row.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan package log row: %w", err)
		}
		items = append(items, ToLogItemDomain(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package log rows: %w", err)
	}

	return items, nil
}

// GlobalFeed returns recent log entries across all packages with the
// joined package and tenant context, newest-first.
func (r *Repository) GlobalFeed(ctx context.Context, filter entities.LogFilter) ([]entities.LogFeedItem, error) {
	builder := qb.
		Select(
			"psl.log_id",
			"psl.package_id",
			"psl.status",
			"psl.status_time",
			"psl.note",
			"p.tracking_no",
			"p.carrier",
			"t.full_name",
			"b.building_code",
			"r.room_no",
			"coalesce(s.full_name, 'Unknown')",
		).
		From("package_status_log psl").
		Join("package p ON p.package_id = psl.package_id").
		Join("tenant t ON t.tenant_id = p.tenant_id").
		Join("room r ON r.room_id = t.room_id").
		Join("building b ON b.building_id = r.building_id").
		LeftJoin("staff s ON s.staff_id = psl.updated_by_staff_id").
		OrderBy("psl.status_time DESC", "psl.log_id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"psl.status": string(*filter.Status)})
	}
	if filter.Unit != nil {
		builder = builder.Where(sq.Expr("(b.building_code || r.room_no) = ?", *filter.Unit))
	}
	if filter.Date != nil {
		builder = builder.Where(sq.Expr("psl.status_time::date = ?::date", filter.Date.Format(dateLayout)))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build log feed query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list log feed: %w", err)
	}
	defer rows.Close()

	items := make([]entities.LogFeedItem, 0)
	for rows.Next() {
		var row LogFeedItemDB
		if err := rows.Scan(
			&row.LogID,
			&row.PackageID,
			&row.Status,
			&row.StatusTime,
			&row.Note,
			&row.TrackingNo,
			&row.Carrier,
			&row.TenantName,
			&row.BuildingCode,
			&row.RoomNo,
			&row.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan log feed row: %w", err)
		}
		items = append(items, ToFeedItemDomain(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log feed rows: %w", err)
	}

	return items, nil
}

func (r *Repository) DeleteForPackage(ctx context.Context, packageID int64) error {
	query := `
		DELETE FROM package_status_log
		WHERE package_id = $1;
	`

	if _, err := r.querier.Exec(ctx, query, packageID); err != nil {
		return fmt.Errorf("delete logs for package: %w", err)
	}

	return nil
}

func (r *Repository) DeleteForTenant(ctx context.Context, tenantID int64) error {
	query := `
		DELETE FROM package_status_log
		WHERE package_id IN (
			SELECT package_id FROM package WHERE tenant_id = $1
		);
	`

	if _, err := r.querier.Exec(ctx, query, tenantID); err != nil {
		return fmt.Errorf("delete logs for tenant: %w", err)
	}

	return nil
}

func (r *Repository) DeleteByStaff(ctx context.Context, staffID int64) error {
	query := `
		DELETE FROM package_status_log
		WHERE updated_by_staff_id = $1;
	`

	if _, err := r.querier.Exec(ctx, query, staffID); err != nil {
		return fmt.Errorf("delete logs by staff: %w", err)
	}

	return nil
}

func (r *Repository) DeleteForStaffPackages(ctx context.Context, staffID int64) error {
	query := `
		DELETE FROM package_status_log
		WHERE package_id IN (
			SELECT package_id FROM package WHERE received_by_staff_id = $1
		);
	`

	if _, err := r.querier.Exec(ctx, query, staffID); err != nil {
		return fmt.Errorf("delete logs for staff packages: %w", err)
	}

	return nil
}
