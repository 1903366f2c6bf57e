package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// ReviewRequest represents the review payload
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// AddListingReview handles the listing-scoped "add review" action. The
// reviewer is stamped from the caller; a second review of the same listing
// by the same user is rejected.
func AddListingReview(c *gin.Context) {
	utils.LogInfo("AddListingReview called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := config.DB.Where("id = ? AND is_active = ?", listingID, true).First(&listing).Error; err != nil {
		utils.LogError("Listing not found for review: %d", listingID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if !utils.ValidateRating(req.Rating) {
		utils.BadRequest(c, utils.ErrInvalidRating, nil)
		return
	}

	var existing models.Review
	if err := config.DB.Where("listing_id = ? AND reviewer_id = ?", listing.ID, user.ID).
		First(&existing).Error; err == nil {
		utils.LogError("Duplicate review attempt - listing ID: %d, user ID: %d", listing.ID, user.ID)
		utils.BadRequest(c, utils.ErrDuplicateReview, nil)
		return
	}

	review := models.Review{
		ListingID:  listing.ID,
		ReviewerID: user.ID,
		Rating:     req.Rating,
		Comment:    utils.SanitizeString(req.Comment),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		// The unique (listing, reviewer) index catches a racing duplicate
		// that slipped past the read above.
		utils.LogError("Failed to create review: %v", err)
		utils.BadRequest(c, utils.ErrDuplicateReview, nil)
		return
	}
	utils.LogInfo("Review %d created for listing %d by user %d", review.ID, listing.ID, user.ID)

	utils.Created(c, "Review added successfully", review)
}

// GetListingReviews returns all reviews for a listing, unfiltered by
// caller.
func GetListingReviews(c *gin.Context) {
	utils.LogInfo("GetListingReviews called")

	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := config.DB.Where("id = ? AND is_active = ?", listingID, true).First(&listing).Error; err != nil {
		utils.LogError("Listing not found: %d", listingID)
		utils.NotFound(c, utils.ErrListingNotFound)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("Reviewer").
		Where("listing_id = ?", listing.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews for listing %d: %v", listing.ID, err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	utils.LogDebug("Found %d reviews for listing %d", len(reviews), listing.ID)

	utils.Success(c, "Reviews retrieved successfully", reviews)
}
