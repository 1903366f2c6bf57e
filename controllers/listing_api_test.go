package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListing_Success(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, token := createUser(t, "host", "host@example.com")

	w := doRequest(t, router, http.MethodPost, "/v1/listings", token, map[string]interface{}{
		"title":        "Entoto Cabin",
		"description":  "A cabin in the eucalyptus forest",
		"listing_type": "apartment",
		"price":        75.5,
		"location":     "Addis Ababa",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var listing models.Listing
	require.NoError(t, config.DB.Where("title = ?", "Entoto Cabin").First(&listing).Error)
	assert.Equal(t, host.ID, listing.CreatedByID)
	assert.True(t, listing.IsActive)
}

func TestCreateListing_RequiresAuth(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	w := doRequest(t, router, http.MethodPost, "/v1/listings", "", map[string]interface{}{
		"title":        "Entoto Cabin",
		"description":  "A cabin in the eucalyptus forest",
		"listing_type": "apartment",
		"price":        75.5,
		"location":     "Addis Ababa",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateListing_InvalidType(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	_, token := createUser(t, "host", "host@example.com")

	w := doRequest(t, router, http.MethodPost, "/v1/listings", token, map[string]interface{}{
		"title":        "Entoto Cabin",
		"description":  "A cabin in the eucalyptus forest",
		"listing_type": "castle",
		"price":        75.5,
		"location":     "Addis Ababa",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetListings_ExcludesInactive(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	active := createListing(t, host.ID)

	inactive := models.Listing{
		Title:       "Closed Hostel",
		Description: "No longer operating",
		ListingType: models.ListingTypeHotel,
		Price:       20,
		Location:    "Gondar",
		CreatedByID: host.ID,
		IsActive:    false,
	}
	require.NoError(t, config.DB.Create(&inactive).Error)

	w := doRequest(t, router, http.MethodGet, "/v1/listings", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	items, ok := data["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, active.ID, first["ID"])
}

func TestUpdateListing_ForeignListingHidden(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	_, strangerToken := createUser(t, "stranger", "stranger@example.com")
	listing := createListing(t, host.ID)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/v1/listings/%d", listing.ID), strangerToken,
		map[string]interface{}{"price": 1.0})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Listing
	require.NoError(t, config.DB.First(&stored, listing.ID).Error)
	assert.Equal(t, listing.Price, stored.Price)
}

func TestDeleteListing_SoftDeactivates(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, token := createUser(t, "host", "host@example.com")
	listing := createListing(t, host.ID)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/v1/listings/%d", listing.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Listing
	require.NoError(t, config.DB.First(&stored, listing.ID).Error)
	assert.False(t, stored.IsActive)

	detail := doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/listings/%d", listing.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, detail.Code)
}

func TestGetListingDetails_IncludesRatingSummary(t *testing.T) {
	router, _, _ := setupTestAPI(t)
	host, _ := createUser(t, "host", "host@example.com")
	guest, _ := createUser(t, "guest", "guest@example.com")
	other, _ := createUser(t, "other", "other@example.com")
	listing := createListing(t, host.ID)

	require.NoError(t, config.DB.Create(&models.Review{
		ListingID: listing.ID, ReviewerID: guest.ID, Rating: 5, Comment: "Excellent",
	}).Error)
	require.NoError(t, config.DB.Create(&models.Review{
		ListingID: listing.ID, ReviewerID: other.ID, Rating: 3, Comment: "Okay",
	}).Error)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/v1/listings/%d", listing.ID), "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	assert.EqualValues(t, 2, data["review_count"])
	assert.InDelta(t, 4.0, data["average_rating"].(float64), 0.001)
}
