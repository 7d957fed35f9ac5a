package pkgstore

import "time"

type PackageDB struct {
	ID                int64
	TenantID          int64
	ReceivedByStaffID int64
	TrackingNo        *string
	Carrier           *string
	SenderName        *string
	CurrentStatus     string
	ArrivedAt         time.Time
	PickedUpAt        *time.Time
}

type PackageModifyDB struct {
	ID                *int64
	TenantID          *int64
	ReceivedByStaffID *int64
	TrackingNo        *string
	Carrier           *string
	SenderName        *string
	CurrentStatus     *string
	ArrivedAt         *time.Time
	PickedUpAt        *time.Time
}

type PackageSummaryDB struct {
	ID            int64
	TrackingNo    *string
	Carrier       *string
	TenantName    string
	BuildingCode  string
	RoomNo        string
	CurrentStatus string
	ArrivedAt     time.Time
	PickedUpAt    *time.Time
}

type PackageDetailDB struct {
	ID             int64
	TenantID       int64
	TrackingNo     *string
	Carrier        *string
	SenderName     *string
	TenantName     string
	BuildingCode   string
	RoomNo         string
	CurrentStatus  string
	ArrivedAt      time.Time
	PickedUpAt     *time.Time
	HandledByStaff *string
}
