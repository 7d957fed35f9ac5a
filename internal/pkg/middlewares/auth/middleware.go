package auth

import (
	"net/http"
	"strings"

	"condotrack/internal/entities"
	"condotrack/internal/pkg/token"
	"condotrack/pkg/logger"
)

// Middleware authenticates requests from a Bearer token and resolves the
// acting staff member or tenant into the request context. Handlers never
// read identity from request input.
type Middleware struct {
	verifier TokenVerifier
	staff    StaffResolver
	tenants  TenantResolver
	log      handlerLogger
}

func New(verifier TokenVerifier, staff StaffResolver, tenants TenantResolver, log handlerLogger) *Middleware {
	return &Middleware{
		verifier: verifier,
		staff:    staff,
		tenants:  tenants,
		log:      log,
	}
}

// RequireStaff admits only staff tokens; with roles given, only those roles.
func (m *Middleware) RequireStaff(roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := m.verifyRequest(w, r)
			if !ok {
				return
			}

			if !claims.Role.IsStaff() || !roleAllowed(claims.Role, roles) {
				writeDenied(w, http.StatusForbidden)
				return
			}

			staff, err := m.staff.StaffProfile(r.Context(), claims.UserID)
			if err != nil {
				m.log.With(
					logger.NewField("user_id", claims.UserID),
					logger.NewField("error", err),
				).Warn("token resolves to no staff member")
				writeDenied(w, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStaff(r.Context(), staff, claims.Role)))
		})
	}
}

// RequireTenant admits only tenant tokens.
func (m *Middleware) RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := m.verifyRequest(w, r)
			if !ok {
				return
			}

			if claims.Role != entities.RoleTenant {
				writeDenied(w, http.StatusForbidden)
				return
			}

			tenant, err := m.tenants.TenantContext(r.Context(), claims.UserID)
			if err != nil {
				m.log.With(
					logger.NewField("user_id", claims.UserID),
					logger.NewField("error", err),
				).Warn("token resolves to no tenant")
				writeDenied(w, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenant)))
		})
	}
}

func (m *Middleware) verifyRequest(w http.ResponseWriter, r *http.Request) (*token.Claims, bool) {
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		writeDenied(w, http.StatusUnauthorized)
		return nil, false
	}

	verified, err := m.verifier.Verify(tokenString)
	if err != nil {
		writeDenied(w, http.StatusUnauthorized)
		return nil, false
	}

	return verified, true
}

func roleAllowed(role entities.Role, allowed []entities.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

func writeDenied(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusForbidden {
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
		return
	}
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
