package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/policy"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// DeleteListing soft-deactivates a listing. The row is kept so existing
// bookings and reviews stay resolvable.
func DeleteListing(c *gin.Context) {
	utils.LogInfo("DeleteListing called")

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
		utils.LogError("User %d attempted to delete listing %d owned by %d", user.ID, listing.ID, listing.CreatedByID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	if err := config.DB.Model(&listing).Update("is_active", false).Error; err != nil {
		utils.LogError("Failed to deactivate listing %d: %v", listing.ID, err)
		utils.InternalServerError(c, "Failed to delete listing", nil)
		return
	}
	utils.LogInfo("Listing %d deactivated by user %d", listing.ID, user.ID)

	utils.Success(c, "Listing deleted successfully", gin.H{"id": listing.ID})
}
