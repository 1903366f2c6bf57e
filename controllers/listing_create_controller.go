package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// ListingRequest represents the listing creation payload
type ListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ListingType string  `json:"listing_type" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Location    string  `json:"location" binding:"required"`
}

// CreateListing handles listing creation. The creator is stamped from the
// caller's identity, never taken from the payload.
func CreateListing(c *gin.Context) {
	utils.LogInfo("CreateListing called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid listing input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if !utils.ValidateListingType(req.ListingType) {
		utils.BadRequest(c, "Invalid listing type", "listing_type must be one of hotel, apartment, activity, restaurant")
		return
	}

	listing := models.Listing{
		Title:       utils.SanitizeString(req.Title),
		Description: utils.SanitizeString(req.Description),
		ListingType: req.ListingType,
		Price:       req.Price,
		Location:    utils.SanitizeString(req.Location),
		CreatedByID: user.ID,
		IsActive:    true,
	}
	if err := config.DB.Create(&listing).Error; err != nil {
		utils.LogError("Failed to create listing: %v", err)
		utils.InternalServerError(c, "Failed to create listing", nil)
		return
	}
	utils.LogInfo("Listing created - ID: %d, by user ID: %d", listing.ID, user.ID)

	utils.Created(c, "Listing created successfully", listing)
}
