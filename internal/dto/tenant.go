package dto

type TenantProfile struct {
	TenantID     int64  `json:"tenant_id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	RoomNo       string `json:"room_no"`
	Floor        string `json:"floor,omitempty"`
	BuildingCode string `json:"building_code"`
}

type TenantContactUpdate struct {
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}
