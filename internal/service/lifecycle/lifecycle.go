package lifecycle

import (
	"context"
	"fmt"
	"time"

	"condotrack/internal/entities"
)

type Service struct {
	ledger    Ledger
	history   HistoryLog
	txManager TxManager
}

func New(ledger Ledger, history HistoryLog, txManager TxManager) *Service {
	return &Service{
		ledger:    ledger,
		history:   history,
		txManager: txManager,
	}
}

// CreatePackage registers a package and writes its first history entry in one
// transaction. Omitted status defaults to ARRIVED; the pickup timestamp is
// derived from the status, never taken from the caller.
func (s *Service) CreatePackage(
	ctx context.Context,
	packageModify entities.PackageModify,
	staffID int64,
	note string,
) (*entities.Package, error) {
	if packageModify.TenantID == nil || *packageModify.TenantID <= 0 {
		return nil, ErrMissingTenant
	}
	if staffID <= 0 {
		return nil, ErrMissingStaff
	}

	status := entities.DefaultPackageStatus
	if packageModify.CurrentStatus != nil {
		status = *packageModify.CurrentStatus
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	packageModify.CurrentStatus = &status
	packageModify.ReceivedByStaffID = &staffID
	packageModify.PickedUpAt = initialPickupTime(status)

	var created *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.ledger.Create(ctx, packageModify)
		if err != nil {
			return fmt.Errorf("create package: %w", err)
		}

		entry := entities.StatusLogEntry{
			PackageID: created.ID,
			StaffID:   staffID,
			Status:    status,
			Note:      note,
		}
		if _, err := s.history.Append(ctx, &entry); err != nil {
			return fmt.Errorf("append status log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ChangeStatus applies a status transition and its history entry atomically.
// A nil status records a note against the current status without changing it.
// Either way exactly one log entry is written per call.
func (s *Service) ChangeStatus(
	ctx context.Context,
	packageID int64,
	status *entities.PackageStatus,
	note string,
	staffID int64,
) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrPackageNotFound
	}
	if staffID <= 0 {
		return nil, ErrMissingStaff
	}
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.ledger.GetByID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		logStatus := current.CurrentStatus
		if status == nil {
			updated = current
		} else {
			logStatus = *status
			updated, err = s.ledger.UpdateStatus(ctx, packageID, *status, stampFor(*status))
			if err != nil {
				return fmt.Errorf("update package status: %w", err)
			}
		}

		entry := entities.StatusLogEntry{
			PackageID: packageID,
			StaffID:   staffID,
			Status:    logStatus,
			Note:      note,
		}
		if _, err := s.history.Append(ctx, &entry); err != nil {
			return fmt.Errorf("append status log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeletePackage removes a package together with its history. Log rows go
// first so the package row never outlives a dangling reference.
func (s *Service) DeletePackage(ctx context.Context, packageID int64) error {
	if !isValidPackageID(packageID) {
		return ErrPackageNotFound
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.history.DeleteForPackage(ctx, packageID); err != nil {
			return fmt.Errorf("delete status log: %w", err)
		}
		if err := s.ledger.Delete(ctx, packageID); err != nil {
			return fmt.Errorf("delete package: %w", err)
		}
		return nil
	})
}

// stampFor maps a target status to its pickup-timestamp action. RETURNED
// keeps whatever timestamp is there so a return after pickup stays visible.
func stampFor(status entities.PackageStatus) entities.PickupStamp {
	switch status {
	case entities.StatusPickedUp:
		return entities.PickupSet
	case entities.StatusArrived:
		return entities.PickupClear
	default:
		return entities.PickupKeep
	}
}

func initialPickupTime(status entities.PackageStatus) *time.Time {
	if status != entities.StatusPickedUp {
		return nil
	}
	now := time.Now().UTC()
	return &now
}
