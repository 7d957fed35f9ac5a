package auth

import (
	"context"

	"condotrack/internal/entities"
)

type ctxKey int

const (
	staffKey ctxKey = iota
	tenantKey
)

// WithStaff returns a context carrying the authenticated staff actor. Handlers
// read it back through StaffFromContext.
func WithStaff(ctx context.Context, staff *entities.Staff, role entities.Role) context.Context {
	return context.WithValue(ctx, staffKey, &StaffActor{Staff: staff, Role: role})
}

// WithTenant returns a context carrying the authenticated tenant.
func WithTenant(ctx context.Context, tenant *entities.TenantContext) context.Context {
	return context.WithValue(ctx, tenantKey, tenant)
}

// StaffActor is the authenticated staff member together with the role the
// token was issued for.
type StaffActor struct {
	Staff *entities.Staff
	Role  entities.Role
}

func StaffFromContext(ctx context.Context) (*StaffActor, bool) {
	actor, ok := ctx.Value(staffKey).(*StaffActor)
	return actor, ok
}

func TenantFromContext(ctx context.Context) (*entities.TenantContext, bool) {
	tenant, ok := ctx.Value(tenantKey).(*entities.TenantContext)
	return tenant, ok
}
