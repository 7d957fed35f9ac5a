package directory

type TenantContextDB struct {
	TenantID     int64
	UserID       int64
	FullName     string
	Phone        *string
	Email        *string
	RoomNo       string
	Floor        *string
	BuildingCode string
}

type StaffDB struct {
	ID       int64
	UserID   int64
	FullName string
	Phone    *string
	Email    *string
}
