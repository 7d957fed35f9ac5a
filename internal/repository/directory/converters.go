package directory

import "condotrack/internal/entities"

func ToTenantContextDomain(t *TenantContextDB) *entities.TenantContext {
	if t == nil {
		return nil
	}
	return &entities.TenantContext{
		TenantID:     t.TenantID,
		UserID:       t.UserID,
		FullName:     t.FullName,
		Phone:        stringOrEmpty(t.Phone),
		Email:        stringOrEmpty(t.Email),
		RoomNo:       t.RoomNo,
		Floor:        stringOrEmpty(t.Floor),
		BuildingCode: t.BuildingCode,
	}
}

func ToStaffDomain(s *StaffDB) *entities.Staff {
	if s == nil {
		return nil
	}
	return &entities.Staff{
		ID:       s.ID,
		UserID:   s.UserID,
		FullName: s.FullName,
		Phone:    stringOrEmpty(s.Phone),
		Email:    stringOrEmpty(s.Email),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
