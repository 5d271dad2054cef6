package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		required []model.Role
		want     bool
	}{
		{"empty set allows any role", model.RoleStandardUser, nil, true},
		{"empty set allows admin", model.RoleAdministrator, []model.Role{}, true},
		{"member role passes", model.RoleAdministrator, []model.Role{model.RoleAdministrator}, true},
		{"non-member role fails", model.RoleStandardUser, []model.Role{model.RoleAdministrator}, false},
		{"member of larger set passes", model.RoleStandardUser, []model.Role{model.RoleAdministrator, model.RoleStandardUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.required))
		})
	}
}

func rolesTestEngine(user *model.User, required ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(constants.GinKeyCurrentUser, user)
		})
	}
	r.GET("/guarded", RequireRoles(required...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRolesForbidsUnderprivileged(t *testing.T) {
	user := &model.User{Role: model.RoleStandardUser, Active: true}
	r := rolesTestEngine(user, model.RoleAdministrator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient role")
}

func TestRequireRolesPassesMatchingRole(t *testing.T) {
	user := &model.User{Role: model.RoleAdministrator, Active: true}
	r := rolesTestEngine(user, model.RoleAdministrator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesWithoutGuardIsUnauthenticated(t *testing.T) {
	r := rolesTestEngine(nil, model.RoleAdministrator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
