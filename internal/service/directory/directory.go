package directory

import (
	"context"
	"fmt"
	"strings"

	"condotrack/internal/entities"
)

type Service struct {
	repository Repository
	ledger     PackageLedger
	history    HistoryLog
	txManager  TxManager
}

func New(repository Repository, ledger PackageLedger, history HistoryLog, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		ledger:     ledger,
		history:    history,
		txManager:  txManager,
	}
}

func (s *Service) TenantContext(ctx context.Context, userID int64) (*entities.TenantContext, error) {
	return s.repository.TenantByUserID(ctx, userID)
}

func (s *Service) StaffProfile(ctx context.Context, userID int64) (*entities.Staff, error) {
	return s.repository.StaffByUserID(ctx, userID)
}

// UpdateTenantContact changes the tenant's phone and/or email and returns the
// refreshed tenant context. Fields are trimmed before validation; an update
// with nothing set is rejected.
func (s *Service) UpdateTenantContact(
	ctx context.Context,
	tenantID int64,
	modify entities.TenantContactModify,
) (*entities.TenantContext, error) {
	if modify.Phone == nil && modify.Email == nil {
		return nil, ErrEmptyUpdate
	}

	if modify.Phone != nil {
		phone := strings.TrimSpace(*modify.Phone)
		if !isValidPhone(phone) {
			return nil, ErrInvalidPhone
		}
		modify.Phone = &phone
	}
	if modify.Email != nil {
		email := strings.TrimSpace(*modify.Email)
		if !isValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		modify.Email = &email
	}

	var updated *entities.TenantContext
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.UpdateTenantContact(ctx, tenantID, modify); err != nil {
			return fmt.Errorf("update tenant contact: %w", err)
		}

		var err error
		updated, err = s.repository.TenantByID(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("reload tenant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTenant removes a tenant with everything hanging off it: status logs
// first, then packages, then the tenant row and its user account.
func (s *Service) DeleteTenant(ctx context.Context, tenantID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.deleteTenantCascade(ctx, tenantID)
	})
}

// DeleteOfficer removes a staff member along with every package they received
// and every log line they wrote.
func (s *Service) DeleteOfficer(ctx context.Context, staffID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.history.DeleteForStaffPackages(ctx, staffID); err != nil {
			return fmt.Errorf("delete logs for staff packages: %w", err)
		}
		if err := s.history.DeleteByStaff(ctx, staffID); err != nil {
			return fmt.Errorf("delete logs by staff: %w", err)
		}
		if _, err := s.ledger.DeleteByReceivingStaff(ctx, staffID); err != nil {
			return fmt.Errorf("delete staff packages: %w", err)
		}

		userID, err := s.repository.DeleteStaff(ctx, staffID)
		if err != nil {
			return fmt.Errorf("delete staff: %w", err)
		}
		if err := s.repository.DeleteUserAccount(ctx, userID); err != nil {
			return fmt.Errorf("delete user account: %w", err)
		}
		return nil
	})
}

// DeleteRoom removes a room and cascades through every tenant living in it.
func (s *Service) DeleteRoom(ctx context.Context, roomID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tenantIDs, err := s.repository.TenantIDsByRoom(ctx, roomID)
		if err != nil {
			return fmt.Errorf("list room tenants: %w", err)
		}

		for _, tenantID := range tenantIDs {
			if err := s.deleteTenantCascade(ctx, tenantID); err != nil {
				return err
			}
		}

		if err := s.repository.DeleteRoom(ctx, roomID); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		return nil
	})
}

// DeleteBuilding removes a building, its rooms and every tenant in them.
func (s *Service) DeleteBuilding(ctx context.Context, buildingID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tenantIDs, err := s.repository.TenantIDsByBuilding(ctx, buildingID)
		if err != nil {
			return fmt.Errorf("list building tenants: %w", err)
		}

		for _, tenantID := range tenantIDs {
			if err := s.deleteTenantCascade(ctx, tenantID); err != nil {
				return err
			}
		}

		if err := s.repository.DeleteRoomsByBuilding(ctx, buildingID); err != nil {
			return fmt.Errorf("delete building rooms: %w", err)
		}
		if err := s.repository.DeleteBuilding(ctx, buildingID); err != nil {
			return fmt.Errorf("delete building: %w", err)
		}
		return nil
	})
}

func (s *Service) deleteTenantCascade(ctx context.Context, tenantID int64) error {
	if err := s.history.DeleteForTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("delete tenant logs: %w", err)
	}
	if _, err := s.ledger.DeleteByTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("delete tenant packages: %w", err)
	}

	userID, err := s.repository.DeleteTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if err := s.repository.DeleteUserAccount(ctx, userID); err != nil {
		return fmt.Errorf("delete user account: %w", err)
	}
	return nil
}
