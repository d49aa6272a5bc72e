package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhive_backend/database"
	"taskhive_backend/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMin = 15
	cfg.JWT.RefreshTTLDays = 7
	config.AppConfig = cfg

	os.Exit(m.Run())
}

// newTestServer boots the full router over an isolated in-memory database,
// with Redis and the background workers disabled.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedCategories(db))

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // no workers in tests

	router := SetupRouter(config.GetConfig(), db, nil, ctx)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func sendJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	res, body := sendJSON(t, http.MethodGet, server.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestRegisterLoginAndPostTask(t *testing.T) {
	server := newTestServer(t)

	res, _ := sendJSON(t, http.MethodPost, server.URL+"/api/v1/users/register", "", map[string]interface{}{
		"name":     "Aidana",
		"email":    "aidana@example.com",
		"username": "aidana",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := sendJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", map[string]interface{}{
		"login":    "aidana",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.AccessToken)

	// Pick a seeded category.
	res, body = sendJSON(t, http.MethodGet, server.URL+"/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var categories struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &categories))
	require.NotEmpty(t, categories.Categories)

	res, body = sendJSON(t, http.MethodPost, server.URL+"/api/v1/tasks", login.AccessToken, map[string]interface{}{
		"title":       "Fix the fence",
		"description": "Two boards down after the storm.",
		"category_id": categories.Categories[0].ID,
		"latitude":    43.238949,
		"longitude":   76.889709,
		"budget":      40,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"status":"NEW"`)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server := newTestServer(t)

	res, _ := sendJSON(t, http.MethodPost, server.URL+"/api/v1/tasks", "", map[string]interface{}{
		"title": "No auth",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = sendJSON(t, http.MethodPost, server.URL+"/api/v1/tasks", "garbage-token", map[string]interface{}{
		"title": "Bad auth",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRoleGateBlocksWrongActor(t *testing.T) {
	server := newTestServer(t)

	res, _ := sendJSON(t, http.MethodPost, server.URL+"/api/v1/helpers/register", "", map[string]interface{}{
		"name":     "Bekzat",
		"email":    "bekzat@example.com",
		"username": "bekzat",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := sendJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", map[string]interface{}{
		"login":     "bekzat",
		"password":  "password123",
		"is_helper": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	// A helper cannot post tasks.
	res, _ = sendJSON(t, http.MethodPost, server.URL+"/api/v1/tasks", login.AccessToken, map[string]interface{}{
		"title":       "Not allowed",
		"description": "Helpers do not post tasks.",
		"category_id": "whatever",
		"latitude":    43.2,
		"longitude":   76.9,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
