package controllers_test

import (
	"net/http"
	"testing"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	register := doRequest(t, router, http.MethodPost, "/v1/register", "", map[string]interface{}{
		"username":   "meron",
		"email":      "meron@example.com",
		"password":   "Password1!",
		"first_name": "Meron",
		"last_name":  "Bekele",
	})
	require.Equal(t, http.StatusCreated, register.Code, "body: %s", register.Body.String())

	login := doRequest(t, router, http.MethodPost, "/v1/login", "", map[string]interface{}{
		"email":    "meron@example.com",
		"password": "Password1!",
	})
	assert.Equal(t, http.StatusOK, login.Code)

	body := decodeBody(t, login)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	me := doRequest(t, router, http.MethodGet, "/v1/bookings", token, nil)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	createUser(t, "meron", "meron@example.com")

	w := doRequest(t, router, http.MethodPost, "/v1/register", "", map[string]interface{}{
		"username": "meron2",
		"email":    "meron@example.com",
		"password": "Password1!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	createUser(t, "meron", "meron@example.com")

	w := doRequest(t, router, http.MethodPost, "/v1/login", "", map[string]interface{}{
		"email":    "meron@example.com",
		"password": "not-the-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_BlockedUser(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	user, _ := createUser(t, "meron", "meron@example.com")
	require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_blocked", true).Error)

	w := doRequest(t, router, http.MethodPost, "/v1/login", "", map[string]interface{}{
		"email":    "meron@example.com",
		"password": "Password1!",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminReport_RequiresAdmin(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	_, token := createUser(t, "meron", "meron@example.com")

	w := doRequest(t, router, http.MethodGet, "/v1/admin/reports/bookings", token, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminReport_Success(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	admin, token := createUser(t, "admin", "admin@example.com")
	require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", admin.ID).Update("is_admin", true).Error)

	host, _ := createUser(t, "host", "host@example.com")
	guest, _ := createUser(t, "guest", "guest@example.com")
	listing := createListing(t, host.ID)
	createBooking(t, guest.ID, listing.ID, 100)

	w := doRequest(t, router, http.MethodGet, "/v1/admin/reports/bookings?period=week", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	summary, ok := data["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, summary["total_bookings"])
}
