package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraconfig "learnhub/internal/infrastructure/config"
	"learnhub/internal/infrastructure/migration"
	"learnhub/internal/infrastructure/seed"
	sharedConfig "learnhub/internal/shared/config"
	"learnhub/internal/shared/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))
	require.NoError(t, seed.NewSeeder(gdb).Run(context.Background()))

	cfg := &infraconfig.Config{
		Auth: sharedConfig.AuthConfig{
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", ExpHours: 1},
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
		},
	}

	router := NewRouter(gdb, cfg, logger.NewLogger())
	router.SetupRoutes()
	return router.GetEngine()
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func signup(t *testing.T, engine *gin.Engine, username, roleName string) (string, uint) {
	t.Helper()

	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/signup", "", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"username":  username,
		"email":     username + "@example.com",
		"password":  "s3cret-pass",
		"roleName":  roleName,
	})
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	var result struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token, result.User.ID
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupRouter(t)

	w, env := doJSON(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Service is healthy", env.Message)
}

func TestAuthFlow(t *testing.T) {
	engine := setupRouter(t)

	token, _ := signup(t, engine, "ada", "")

	t.Run("login with email succeeds", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "ada@example.com",
			"password": "s3cret-pass",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "ada@example.com",
			"password": "wrong-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user gets the same response shape", func(t *testing.T) {
		w, env := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "ghost@example.com",
			"password": "s3cret-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w2, env2 := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "ada@example.com",
			"password": "wrong-pass",
		})
		assert.Equal(t, w.Code, w2.Code)
		assert.Equal(t, env.Message, env2.Message)
	})

	t.Run("token grants access to protected routes", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/courses", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/courses", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/courses", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCapabilityEnforcement(t *testing.T) {
	engine := setupRouter(t)

	adminToken, _ := signup(t, engine, "admin", "Admin")
	employeeToken, employeeID := signup(t, engine, "emp", "Employee")

	t.Run("admin can create a master", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/masters", adminToken, gin.H{
			"name": "Departments",
			"code": "DEPT",
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("employee is forbidden from masters", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/masters", employeeToken, gin.H{
			"name": "Rogue",
			"code": "ROGUE",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee can read courses", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/courses", employeeToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee cannot create courses", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/courses", employeeToken, gin.H{
			"name":       "Rogue Course",
			"courseType": "technical",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee can read their own user record", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/users/"+itoa(employeeID), employeeToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee cannot list users", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/users", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee cannot change their own role", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPut, "/api/users/"+itoa(employeeID), employeeToken, gin.H{
			"roleId": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("roles listing requires roles:read", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodGet, "/api/roles", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, env := doJSON(t, engine, http.MethodGet, "/api/roles", adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var roles []struct {
			Name        string   `json:"name"`
			Permissions []string `json:"permissions"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &roles))
		assert.Len(t, roles, 3)
	})
}

func TestPermissionEndpoints(t *testing.T) {
	engine := setupRouter(t)

	adminToken, _ := signup(t, engine, "admin", "Admin")

	t.Run("duplicate triple conflicts", func(t *testing.T) {
		// courses:read is already seeded as a global permission.
		w, _ := doJSON(t, engine, http.MethodPost, "/api/permissions", adminToken, gin.H{
			"module": "courses",
			"action": "read",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown linked role is not found", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/permissions", adminToken, gin.H{
			"module":  "reports",
			"action":  "read",
			"roleIds": []uint{9999},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid action is a validation error", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/permissions", adminToken, gin.H{
			"module": "reports",
			"action": "explode",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create then delete round trip", func(t *testing.T) {
		w, env := doJSON(t, engine, http.MethodPost, "/api/permissions", adminToken, gin.H{
			"module": "reports",
			"action": "read",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, "reports:read", created.Name)

		w, _ = doJSON(t, engine, http.MethodDelete, "/api/permissions/"+itoa(created.ID), adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, engine, http.MethodDelete, "/api/permissions/"+itoa(created.ID), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
