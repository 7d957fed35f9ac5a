package dto

import "time"

type PackageCreate struct {
	TenantID   int64      `json:"tenant_id"`
	TrackingNo *string    `json:"tracking_no,omitempty"`
	Carrier    *string    `json:"carrier,omitempty"`
	SenderName *string    `json:"sender_name,omitempty"`
	Status     *string    `json:"status,omitempty"`
	Note       *string    `json:"note,omitempty"`
	ArrivedAt  *time.Time `json:"arrived_at,omitempty"`
}

type PackageStatusUpdate struct {
	Status *string `json:"status,omitempty"`
	Note   *string `json:"note,omitempty"`
}

type Package struct {
	ID         int64      `json:"package_id"`
	TenantID   int64      `json:"tenant_id,omitempty"`
	TrackingNo string     `json:"tracking_no,omitempty"`
	Carrier    string     `json:"carrier,omitempty"`
	SenderName string     `json:"sender_name,omitempty"`
	Status     string     `json:"status"`
	ArrivedAt  time.Time  `json:"arrived_at"`
	PickedUpAt *time.Time `json:"picked_up_at,omitempty"`
}

type PackageSummary struct {
	ID         int64      `json:"package_id"`
	TrackingNo string     `json:"tracking_no,omitempty"`
	Carrier    string     `json:"carrier,omitempty"`
	TenantName string     `json:"tenant_name"`
	Unit       string     `json:"unit"`
	Status     string     `json:"status"`
	ArrivedAt  time.Time  `json:"arrived_at"`
	PickedUpAt *time.Time `json:"picked_up_at,omitempty"`
}

type PackageDetail struct {
	ID             int64      `json:"package_id"`
	TrackingNo     string     `json:"tracking_no,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	SenderName     string     `json:"sender_name,omitempty"`
	TenantName     string     `json:"tenant_name"`
	Unit           string     `json:"unit"`
	Status         string     `json:"status"`
	ArrivedAt      time.Time  `json:"arrived_at"`
	PickedUpAt     *time.Time `json:"picked_up_at,omitempty"`
	HandledByStaff string     `json:"handled_by_staff,omitempty"`
	LatestNote     string     `json:"latest_note,omitempty"`
}

type PackageLogItem struct {
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	StatusTime time.Time `json:"status_time"`
	UpdatedBy  string    `json:"updated_by"`
}

type PackageLogs struct {
	Package Package          `json:"package"`
	Logs    []PackageLogItem `json:"logs"`
}

type LogFeedItem struct {
	LogID      int64     `json:"log_id"`
	PackageID  int64     `json:"package_id"`
	Status     string    `json:"status"`
	StatusTime time.Time `json:"status_time"`
	Note       string    `json:"note,omitempty"`
	TrackingNo string    `json:"tracking_no,omitempty"`
	Carrier    string    `json:"carrier,omitempty"`
	TenantName string    `json:"tenant_name"`
	Unit       string    `json:"unit"`
	UpdatedBy  string    `json:"updated_by"`
}
