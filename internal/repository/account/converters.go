package account

import "condotrack/internal/entities"

func ToDomain(a *UserAccountDB) *entities.UserAccount {
	if a == nil {
		return nil
	}
	return &entities.UserAccount{
		ID:       a.ID,
		Username: a.Username,
		Password: a.Password,
		Role:     entities.Role(a.Role),
		Status:   entities.AccountStatus(a.Status),
	}
}
