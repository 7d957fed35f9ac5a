package pkgstore

import "condotrack/internal/entities"

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}
	return &entities.Package{
		ID:                p.ID,
		TenantID:          p.TenantID,
		ReceivedByStaffID: p.ReceivedByStaffID,
		TrackingNo:        stringOrEmpty(p.TrackingNo),
		Carrier:           stringOrEmpty(p.Carrier),
		SenderName:        stringOrEmpty(p.SenderName),
		CurrentStatus:     entities.PackageStatus(p.CurrentStatus),
		ArrivedAt:         p.ArrivedAt,
		PickedUpAt:        p.PickedUpAt,
	}
}

func ToSummaryDomain(p *PackageSummaryDB) entities.PackageSummary {
	return entities.PackageSummary{
		ID:            p.ID,
		TrackingNo:    stringOrEmpty(p.TrackingNo),
		Carrier:       stringOrEmpty(p.Carrier),
		TenantName:    p.TenantName,
		BuildingCode:  p.BuildingCode,
		RoomNo:        p.RoomNo,
		CurrentStatus: entities.PackageStatus(p.CurrentStatus),
		ArrivedAt:     p.ArrivedAt,
		PickedUpAt:    p.PickedUpAt,
	}
}

func ToDetailDomain(p *PackageDetailDB) *entities.PackageDetail {
	if p == nil {
		return nil
	}
	return &entities.PackageDetail{
		ID:             p.ID,
		TenantID:       p.TenantID,
		TrackingNo:     stringOrEmpty(p.TrackingNo),
		Carrier:        stringOrEmpty(p.Carrier),
		SenderName:     stringOrEmpty(p.SenderName),
		TenantName:     p.TenantName,
		BuildingCode:   p.BuildingCode,
		RoomNo:         p.RoomNo,
		CurrentStatus:  entities.PackageStatus(p.CurrentStatus),
		ArrivedAt:      p.ArrivedAt,
		PickedUpAt:     p.PickedUpAt,
		HandledByStaff: stringOrEmpty(p.HandledByStaff),
	}
}

func FromDomainModify(p *entities.PackageModify) *PackageModifyDB {
	if p == nil {
		return nil
	}
	packageModifyDB := &PackageModifyDB{
		ID:                p.ID,
		TenantID:          p.TenantID,
		ReceivedByStaffID: p.ReceivedByStaffID,
		TrackingNo:        p.TrackingNo,
		Carrier:           p.Carrier,
		SenderName:        p.SenderName,
		ArrivedAt:         p.ArrivedAt,
		PickedUpAt:        p.PickedUpAt,
	}

	if p.CurrentStatus != nil {
		status := p.CurrentStatus.String()
		packageModifyDB.CurrentStatus = &status
	}

	return packageModifyDB
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
