package statuslog

import "condotrack/internal/entities"

func ToDomain(e *StatusLogEntryDB) *entities.StatusLogEntry {
	if e == nil {
		return nil
	}
	return &entities.StatusLogEntry{
		ID:         e.ID,
		PackageID:  e.PackageID,
		StaffID:    e.StaffID,
		Status:     entities.PackageStatus(e.Status),
		Note:       stringOrEmpty(e.Note),
		StatusTime: e.StatusTime,
	}
}

func ToLogItemDomain(e *PackageLogItemDB) entities.PackageLogItem {
	return entities.PackageLogItem{
		Status:     entities.PackageStatus(e.Status),
		Note:       stringOrEmpty(e.Note),
		StatusTime: e.StatusTime,
		UpdatedBy:  e.UpdatedBy,
	}
}

func ToFeedItemDomain(e *LogFeedItemDB) entities.LogFeedItem {
	return entities.LogFeedItem{
		LogID:        e.LogID,
		PackageID:    e.PackageID,
		Status:       entities.PackageStatus(e.Status),
		StatusTime:   e.StatusTime,
		Note:         stringOrEmpty(e.Note),
		TrackingNo:   stringOrEmpty(e.TrackingNo),
		Carrier:      stringOrEmpty(e.Carrier),
		TenantName:   e.TenantName,
		BuildingCode: e.BuildingCode,
		RoomNo:       e.RoomNo,
		UpdatedBy:    e.UpdatedBy,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
