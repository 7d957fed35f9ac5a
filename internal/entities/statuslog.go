package entities

import "time"

// StatusLogEntry is one immutable audit record of a status assignment.
// StatusTime is assigned by the store at write time; entries are never
// updated, only cascade-deleted with their package.
type StatusLogEntry struct {
	ID         int64
	PackageID  int64
	StaffID    int64
	Status     PackageStatus
	Note       string
	StatusTime time.Time
}

// PackageLogItem is one row of a package's history timeline.
type PackageLogItem struct {
	Status     PackageStatus
	Note       string
	StatusTime time.Time
	UpdatedBy  string
}

// LogFeedItem is one row of the global status-change feed.
type LogFeedItem struct {
	LogID        int64
	PackageID    int64
	Status       PackageStatus
	StatusTime   time.Time
	Note         string
	TrackingNo   string
	Carrier      string
	TenantName   string
	BuildingCode string
	RoomNo       string
	UpdatedBy    string
}

// LogFilter narrows the global feed. Conditions combine with AND.
type LogFilter struct {
	Status *PackageStatus
	Unit   *string
	Date   *time.Time
	Limit  int
}
