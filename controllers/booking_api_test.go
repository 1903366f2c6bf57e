package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Success(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, token := createUser(t, "guest", "guest@example.com")
	listing := createListing(t, host.ID)

	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 10).Format("2006-01-02")

	w := doRequest(t, router, http.MethodPost, "/v1/bookings", token, map[string]interface{}{
		"listing_id":       listing.ID,
		"check_in_date":    checkIn,
		"check_out_date":   checkOut,
		"number_of_guests": 2,
		"total_price":      150.0,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, config.DB.Where("user_id = ?", guest.ID).First(&booking).Error)
	assert.Equal(t, listing.ID, booking.ListingID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 150.0, booking.TotalPrice)
}

func TestCreateBooking_CheckOutBeforeCheckIn(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	_, token := createUser(t, "guest", "guest@example.com")
	listing := createListing(t, host.ID)

	w := doRequest(t, router, http.MethodPost, "/v1/bookings", token, map[string]interface{}{
		"listing_id":       listing.ID,
		"check_in_date":    time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		"check_out_date":   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"number_of_guests": 2,
		"total_price":      150.0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBooking_ForeignBookingHidden(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, _ := createUser(t, "guest", "guest@example.com")
	_, strangerToken := createUser(t, "stranger", "stranger@example.com")
	listing := createListing(t, host.ID)
	booking := createBooking(t, guest.ID, listing.ID, 100)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/bookings/%d", booking.ID), strangerToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["message"])
}

func TestListBookings_OnlyOwn(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, token := createUser(t, "guest", "guest@example.com")
	other, _ := createUser(t, "other", "other@example.com")
	listing := createListing(t, host.ID)
	mine := createBooking(t, guest.ID, listing.ID, 100)
	createBooking(t, other.ID, listing.ID, 200)

	w := doRequest(t, router, http.MethodGet, "/v1/bookings", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	items, ok := data["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, mine.ID, first["ID"])
}

func TestCancelBooking(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, token := createUser(t, "guest", "guest@example.com")
	listing := createListing(t, host.ID)
	booking := createBooking(t, guest.ID, listing.ID, 100)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/v1/bookings/%d", booking.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, config.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestDownloadBookingReceipt(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, token := createUser(t, "guest", "guest@example.com")
	listing := createListing(t, host.ID)
	booking := createBooking(t, guest.ID, listing.ID, 100)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/bookings/%d/receipt", booking.ID), token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
