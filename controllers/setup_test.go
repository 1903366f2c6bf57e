package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/controllers"
	"github.com/dawit-alemu/tripstay/gateway"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/payments"
	"github.com/dawit-alemu/tripstay/routes"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGateway struct {
	initResult   *gateway.InitializeResult
	initErr      error
	verifyStatus string
	verifyErr    error
}

func (f *fakeGateway) Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	return f.initResult, nil
}

func (f *fakeGateway) Verify(ctx context.Context, txRef string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifyStatus, nil
}

// setupTestAPI wires the full router against an isolated sqlite database
// and a fake payment gateway. The returned gateway and config can be
// mutated per test before issuing requests.
func setupTestAPI(t *testing.T) (*gin.Engine, *fakeGateway, *config.Config) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	config.DB = db

	gw := &fakeGateway{}
	cfg := &config.Config{
		ChapaSecretKey: "sk-test",
		AppBaseURL:     "http://localhost:8080",
	}
	controllers.PaymentCoordinator = payments.NewCoordinator(db, gw, cfg, nil)

	return routes.SetupRouter(), gw, cfg
}

func createUser(t *testing.T, username, email string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("Password1!")
	require.NoError(t, err)

	user := models.User{Username: username, Email: email, Password: hash, FirstName: "Test", LastName: "User"}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)

	return user, token
}

func createListing(t *testing.T, ownerID uint) models.Listing {
	t.Helper()

	listing := models.Listing{
		Title:       "Lakeside Hotel",
		Description: "Quiet rooms by the lake",
		ListingType: models.ListingTypeHotel,
		Price:       50,
		Location:    "Bahir Dar",
		CreatedByID: ownerID,
		IsActive:    true,
	}
	require.NoError(t, config.DB.Create(&listing).Error)
	return listing
}

func createBooking(t *testing.T, userID, listingID uint, total float64) models.Booking {
	t.Helper()

	booking := models.Booking{
		ListingID:      listingID,
		UserID:         userID,
		CheckInDate:    time.Now().AddDate(0, 0, 7),
		CheckOutDate:   time.Now().AddDate(0, 0, 9),
		NumberOfGuests: 2,
		TotalPrice:     total,
		Status:         models.BookingStatusPending,
	}
	require.NoError(t, config.DB.Create(&booking).Error)
	return booking
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
