package entities

import (
	"time"
)

type Package struct {
	ID                int64
	TenantID          int64
	ReceivedByStaffID int64
	TrackingNo        string
	Carrier           string
	SenderName        string
	CurrentStatus     PackageStatus
	ArrivedAt         time.Time
	PickedUpAt        *time.Time
}

type PackageStatus string

const (
	StatusArrived  PackageStatus = "ARRIVED"
	StatusPickedUp PackageStatus = "PICKED_UP"
	StatusReturned PackageStatus = "RETURNED"
)

const DefaultPackageStatus = StatusArrived

func (s PackageStatus) String() string {
	return string(s)
}

func (s PackageStatus) IsValid() bool {
	switch s {
	case StatusArrived, StatusPickedUp, StatusReturned:
		return true
	default:
		return false
	}
}

type PackageModify struct {
	ID                *int64
	TenantID          *int64
	ReceivedByStaffID *int64
	TrackingNo        *string
	Carrier           *string
	SenderName        *string
	CurrentStatus     *PackageStatus
	ArrivedAt         *time.Time
	PickedUpAt        *time.Time
}

// PickupStamp describes what a status assignment does to the pickup timestamp.
type PickupStamp int

const (
	PickupKeep PickupStamp = iota
	PickupSet
	PickupClear
)

// PackageSummary is the joined row shown in staff package lists.
type PackageSummary struct {
	ID            int64
	TrackingNo    string
	Carrier       string
	TenantName    string
	BuildingCode  string
	RoomNo        string
	CurrentStatus PackageStatus
	ArrivedAt     time.Time
	PickedUpAt    *time.Time
}

// PackageDetail is the fully joined view of one package. LatestNote is filled
// from the status log, not the package row.
type PackageDetail struct {
	ID             int64
	TenantID       int64
	TrackingNo     string
	Carrier        string
	SenderName     string
	TenantName     string
	BuildingCode   string
	RoomNo         string
	CurrentStatus  PackageStatus
	ArrivedAt      time.Time
	PickedUpAt     *time.Time
	HandledByStaff string
	LatestNote     string
}

type PeriodPreset string

const (
	PeriodToday  PeriodPreset = "today"
	PeriodLast7  PeriodPreset = "last7"
	PeriodLast30 PeriodPreset = "last30"
	PeriodMonth  PeriodPreset = "month"
)

func (p PeriodPreset) String() string {
	return string(p)
}

// PackageFilter narrows package lists. Conditions combine with AND; an
// explicit StartDate/EndDate range wins over Date, which wins over Period.
type PackageFilter struct {
	Status    *PackageStatus
	Unit      *string
	Date      *time.Time
	Period    PeriodPreset
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Limit     int
}

// HasDateWindow reports whether any date constraint is already set.
func (f PackageFilter) HasDateWindow() bool {
	return f.StartDate != nil || f.Date != nil || f.Period != ""
}
