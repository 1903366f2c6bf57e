package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// GetListingDetails returns a single active listing with its reviews and
// rating summary.
func GetListingDetails(c *gin.Context) {
	utils.LogInfo("GetListingDetails called")

	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := config.DB.Preload("Reviews").Preload("Reviews.Reviewer").
		Where("id = ? AND is_active = ?", listingID, true).
		First(&listing).Error; err != nil {
		utils.LogError("Listing not found: %d", listingID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	listing.ReviewCount = len(listing.Reviews)
	if listing.ReviewCount > 0 {
		var sum int
		for _, review := range listing.Reviews {
			sum += review.Rating
		}
		listing.AverageRating = float64(sum) / float64(listing.ReviewCount)
	}
	utils.LogDebug("Listing %d has %d reviews", listing.ID, listing.ReviewCount)

	utils.Success(c, "Listing retrieved successfully", listing)
}
