package entities

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleOfficer Role = "OFFICER"
	RoleTenant  Role = "TENANT"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleOfficer
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountDisabled AccountStatus = "DISABLED"
)

type UserAccount struct {
	ID       int64
	Username string
	Password string
	Role     Role
	Status   AccountStatus
}

type Building struct {
	ID   int64
	Code string
	Name string
}

type Room struct {
	ID         int64
	BuildingID int64
	RoomNo     string
	Floor      string
}

type Staff struct {
	ID       int64
	UserID   int64
	FullName string
	Phone    string
	Email    string
}

// TenantContext is the tenant joined with its room and building, as resolved
// from an authenticated user id.
type TenantContext struct {
	TenantID     int64
	UserID       int64
	FullName     string
	Phone        string
	Email        string
	RoomNo       string
	Floor        string
	BuildingCode string
}

type TenantContactModify struct {
	Phone *string
	Email *string
}
