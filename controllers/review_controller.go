package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/policy"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// ReviewCreateRequest represents a standalone review creation payload
type ReviewCreateRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// GetReviews lists reviews, optionally filtered by listing and rating.
// Review reads are public.
func GetReviews(c *gin.Context) {
	utils.LogInfo("GetReviews called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Review{})

	if listingID := c.Query("listing"); listingID != "" {
		query = query.Where("listing_id = ?", listingID)
	}
	if rating := c.Query("rating"); rating != "" {
		query = query.Where("rating = ?", rating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	pagination.SetTotal(total)

	var reviews []models.Review
	if err := query.Preload("Reviewer").
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Reviews retrieved successfully", reviews, pagination)
}

// GetReview returns a single review
func GetReview(c *gin.Context) {
	utils.LogInfo("GetReview called")

	reviewID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var review models.Review
	if err := config.DB.Preload("Reviewer").First(&review, reviewID).Error; err != nil {
		utils.LogError("Review not found: %d", reviewID)
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}

	utils.Success(c, "Review retrieved successfully", review)
}

// CreateReview creates a review through the flat /reviews collection. Same
// duplicate rule as the listing-scoped action.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if !utils.ValidateRating(req.Rating) {
		utils.BadRequest(c, utils.ErrInvalidRating, nil)
		return
	}

	var listing models.Listing
	if err := config.DB.Where("id = ? AND is_active = ?", req.ListingID, true).First(&listing).Error; err != nil {
		utils.LogError("Listing not found for review: %d", req.ListingID)
		utils.NotFound(c, utils.ErrListingNotFound)
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
		utils.LogError("Failed to create review: %v", err)
		utils.BadRequest(c, utils.ErrDuplicateReview, nil)
		return
	}
	utils.LogInfo("Review %d created for listing %d by user %d", review.ID, listing.ID, user.ID)

	utils.Created(c, "Review added successfully", review)
}

// UpdateReview lets a reviewer edit their own review
func UpdateReview(c *gin.Context) {
	utils.LogInfo("UpdateReview called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.LogError("Review not found: %d", reviewID)
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}

	if !policy.CanModifyReview(user, review) {
		utils.LogError("User %d attempted to update review %d by %d", user.ID, review.ID, review.ReviewerID)
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review update input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if !utils.ValidateRating(req.Rating) {
		utils.BadRequest(c, utils.ErrInvalidRating, nil)
		return
	}

	review.Rating = req.Rating
	review.Comment = utils.SanitizeString(req.Comment)
	if err := config.DB.Save(&review).Error; err != nil {
		utils.LogError("Failed to update review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}
	utils.LogInfo("Review %d updated by user %d", review.ID, user.ID)

	utils.Success(c, "Review updated successfully", review)
}

// DeleteReview lets a reviewer delete their own review
func DeleteReview(c *gin.Context) {
	utils.LogInfo("DeleteReview called")

	user, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.LogError("Review not found: %d", reviewID)
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}

	if !policy.CanModifyReview(user, review) {
		utils.LogError("User %d attempted to delete review %d by %d", user.ID, review.ID, review.ReviewerID)
		utils.NotFound(c, utils.ErrReviewNotFound)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("Failed to delete review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}
	utils.LogInfo("Review %d deleted by user %d", review.ID, user.ID)

	utils.Success(c, "Review deleted successfully", gin.H{"id": review.ID})
}
