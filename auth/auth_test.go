package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto/auth"
	"resto/database"
	"resto/repository"
	"resto/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	ctl := auth.NewController(repository.NewUserRepository(db))
	router := gin.New()
	router.POST("/auth/register", ctl.Register)
	router.POST("/auth/login", ctl.Login)
	router.POST("/auth/refresh", ctl.Refresh)
	return router
}

func post(router *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router := newAuthRouter(t)

	w := post(router, "/auth/register", map[string]string{
		"name": "Budi", "email": "budi@example.com", "password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = post(router, "/auth/login", map[string]string{
		"email": "budi@example.com", "password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var tokens map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	assert.NotEmpty(t, tokens["access_token"])
	assert.NotEmpty(t, tokens["refresh_token"])

	_, err := utils.ExtractUserID("Bearer " + tokens["access_token"])
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newAuthRouter(t)

	body := map[string]string{"name": "Budi", "email": "budi@example.com", "password": "rahasia123"}
	require.Equal(t, http.StatusOK, post(router, "/auth/register", body).Code)

	w := post(router, "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email sudah terdaftar")
}

func TestRegisterMissingFields(t *testing.T) {
	router := newAuthRouter(t)

	w := post(router, "/auth/register", map[string]string{"name": "Budi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter(t)

	require.Equal(t, http.StatusOK, post(router, "/auth/register", map[string]string{
		"name": "Budi", "email": "budi@example.com", "password": "rahasia123",
	}).Code)

	w := post(router, "/auth/login", map[string]string{
		"email": "budi@example.com", "password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email atau password salah")
}

func TestLoginUnknownEmail(t *testing.T) {
	router := newAuthRouter(t)

	w := post(router, "/auth/login", map[string]string{
		"email": "tidakada@example.com", "password": "apapun",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh(t *testing.T) {
	router := newAuthRouter(t)

	require.Equal(t, http.StatusOK, post(router, "/auth/register", map[string]string{
		"name": "Budi", "email": "budi@example.com", "password": "rahasia123",
	}).Code)

	w := post(router, "/auth/login", map[string]string{
		"email": "budi@example.com", "password": "rahasia123",
	})
	var tokens map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))

	w = post(router, "/auth/refresh", map[string]string{"refresh_token": tokens["refresh_token"]})
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed["access_token"])

	w = post(router, "/auth/refresh", map[string]string{"refresh_token": "bukan-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
