package statuslog

import "time"

type StatusLogEntryDB struct {
	ID         int64
	PackageID  int64
	StaffID    int64
	Status     string
	Note       *string
	StatusTime time.Time
}

type PackageLogItemDB struct {
	Status     string
	Note       *string
	StatusTime time.Time
	UpdatedBy  string
}

type LogFeedItemDB struct {
	LogID        int64
	PackageID    int64
	Status       string
	StatusTime   time.Time
	Note         *string
	TrackingNo   *string
	Carrier      *string
	TenantName   string
	BuildingCode string
	RoomNo       string
	UpdatedBy    string
}
