package directory

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"condotrack/internal/entities"
	"condotrack/internal/service/directory"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const tenantContextQuery = `
	SELECT
		t.tenant_id,
		t.user_id,
		t.full_name,
		t.phone,
		t.email,
		r.room_no,
		r.floor,
		b.building_code
	FROM tenant t
	JOIN room r ON t.room_id = r.room_id
	JOIN building b ON r.building_id = b.building_id
`

func (r *Repository) TenantByUserID(ctx context.Context, userID int64) (*entities.TenantContext, error) {
	query := tenantContextQuery + `WHERE t.user_id = $1`

	return r.scanTenantContext(r.querier.QueryRow(ctx, query, userID))
}

func (r *Repository) TenantByID(ctx context.Context, tenantID int64) (*entities.TenantContext, error) {
	query := tenantContextQuery + `WHERE t.tenant_id = $1`

	return r.scanTenantContext(r.querier.QueryRow(ctx, query, tenantID))
}

func (r *Repository) StaffByUserID(ctx context.Context, userID int64) (*entities.Staff, error) {
	query := `
		SELECT staff_id, user_id, full_name, phone, email
		FROM staff
		WHERE user_id = $1
	`

	var staffDB StaffDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&staffDB.ID,
		&staffDB.UserID,
		&staffDB.FullName,
		&staffDB.Phone,
		&staffDB.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrStaffNotFound
		}
		return nil, fmt.Errorf("unexpected directory repository staffbyuserid error: %w", err)
	}

	return ToStaffDomain(&staffDB), nil
}

func (r *Repository) UpdateTenantContact(ctx context.Context, tenantID int64, modify entities.TenantContactModify) error {
	builder := qb.
		Update("tenant")

	if modify.Phone != nil {
		builder = builder.Set("phone", *modify.Phone)
	}
	if modify.Email != nil {
		builder = builder.Set("email", *modify.Email)
	}

	builder = builder.Where(sq.Eq{"tenant_id": tenantID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected directory repository updatetenantcontact error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected directory repository updatetenantcontact error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return directory.ErrTenantNotFound
	}

	return nil
}

func (r *Repository) TenantIDsByRoom(ctx context.Context, roomID int64) ([]int64, error) {
	query := `
		SELECT tenant_id FROM tenant WHERE room_id = $1
	`

	return r.collectIDs(ctx, query, roomID)
}

func (r *Repository) TenantIDsByBuilding(ctx context.Context, buildingID int64) ([]int64, error) {
	query := `
		SELECT t.tenant_id
		FROM tenant t
		JOIN room r ON t.room_id = r.room_id
		WHERE r.building_id = $1
	`

	return r.collectIDs(ctx, query, buildingID)
}

// DeleteTenant removes the tenant row and reports the linked user account id
// so the caller can finish the cascade.
func (r *Repository) DeleteTenant(ctx context.Context, tenantID int64) (int64, error) {
	query := `
		DELETE FROM tenant WHERE tenant_id = $1 RETURNING user_id
	`

	var userID int64
	err := r.querier.QueryRow(ctx, query, tenantID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, directory.ErrTenantNotFound
		}
		return 0, fmt.Errorf("unexpected directory repository deletetenant error: %w", err)
	}

	return userID, nil
}

func (r *Repository) DeleteStaff(ctx context.Context, staffID int64) (int64, error) {
	query := `
		DELETE FROM staff WHERE staff_id = $1 RETURNING user_id
	`

	var userID int64
	err := r.querier.QueryRow(ctx, query, staffID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, directory.ErrStaffNotFound
		}
		return 0, fmt.Errorf("unexpected directory repository deletestaff error: %w", err)
	}

	return userID, nil
}

func (r *Repository) DeleteUserAccount(ctx context.Context, userID int64) error {
	query := `
		DELETE FROM user_account WHERE user_id = $1
	`

	if _, err := r.querier.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("unexpected directory repository deleteuseraccount error: %w", err)
	}

	return nil
}

func (r *Repository) DeleteRoom(ctx context.Context, roomID int64) error {
	query := `
		DELETE FROM room WHERE room_id = $1
	`

	result, err := r.querier.Exec(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("unexpected directory repository deleteroom error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return directory.ErrRoomNotFound
	}

	return nil
}

func (r *Repository) DeleteRoomsByBuilding(ctx context.Context, buildingID int64) error {
	query := `
		DELETE FROM room WHERE building_id = $1
	`

	if _, err := r.querier.Exec(ctx, query, buildingID); err != nil {
		return fmt.Errorf("unexpected directory repository deleteroomsbybuilding error: %w", err)
	}

	return nil
}

func (r *Repository) DeleteBuilding(ctx context.Context, buildingID int64) error {
	query := `
		DELETE FROM building WHERE building_id = $1
	`

	result, err := r.querier.Exec(ctx, query, buildingID)
	if err != nil {
		return fmt.Errorf("unexpected directory repository deletebuilding error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return directory.ErrBuildingNotFound
	}

	return nil
}

func (r *Repository) scanTenantContext(row pgx.Row) (*entities.TenantContext, error) {
	var tenantDB TenantContextDB
	err := row.Scan(
		&tenantDB.TenantID,
		&tenantDB.UserID,
		&tenantDB.FullName,
		&tenantDB.Phone,
		&tenantDB.Email,
		&tenantDB.RoomNo,
		&tenantDB.Floor,
		&tenantDB.BuildingCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrTenantNotFound
		}
		return nil, fmt.Errorf("unexpected directory repository tenant scan error: %w", err)
	}

	return ToTenantContextDomain(&tenantDB), nil
}

func (r *Repository) collectIDs(ctx context.Context, query string, arg interface{}) ([]int64, error) {
	rows, err := r.querier.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("unexpected directory repository id query error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected directory repository id scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected directory repository id rows error: %w", err)
	}

	return ids, nil
}
