package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/policy"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// ListingUpdateRequest represents a partial listing update payload
type ListingUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ListingType *string  `json:"listing_type"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateListing handles listing updates. Only the creator may modify a
// listing; everyone else gets 404 rather than a hint that it exists.
func UpdateListing(c *gin.Context) {
	utils.LogInfo("UpdateListing called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, listingID).Error; err != nil {
		utils.LogError("Listing not found: %d", listingID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	if !policy.CanModifyListing(user, listing) {
		utils.LogError("User %d attempted to update listing %d owned by %d", user.ID, listing.ID, listing.CreatedByID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	var req ListingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid listing update input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = utils.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = utils.SanitizeString(*req.Description)
	}
	if req.ListingType != nil {
		if !utils.ValidateListingType(*req.ListingType) {
			utils.BadRequest(c, "Invalid listing type", "listing_type must be one of hotel, apartment, activity, restaurant")
			return
		}
		updates["listing_type"] = *req.ListingType
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.BadRequest(c, utils.ErrInvalidPrice, nil)
			return
		}
		updates["price"] = *req.Price
	}
	if req.Location != nil {
		updates["location"] = utils.SanitizeString(*req.Location)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&listing).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update listing %d: %v", listing.ID, err)
		utils.InternalServerError(c, "Failed to update listing", nil)
		return
	}
	utils.LogInfo("Listing %d updated by user %d", listing.ID, user.ID)

	utils.Success(c, "Listing updated successfully", listing)
}
