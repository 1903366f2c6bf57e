package controllers

import (
	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

var listingSortFields = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"title":      "title",
}

// GetListings handles listing search with filtering, ordering, and
// pagination. Only active listings are visible.
func GetListings(c *gin.Context) {
	utils.LogInfo("GetListings called with query params: %v", c.Request.URL.Query())

	pagination := utils.NewPagination(c)

	sortBy := c.DefaultQuery("sort_by", "created_at")
	column, ok := listingSortFields[sortBy]
	if !ok {
		utils.BadRequest(c, "Invalid sort field", "sort_by must be one of created_at, price, title")
		return
	}
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		utils.BadRequest(c, "Invalid order", "order must be asc or desc")
		return
	}

	query := config.DB.Model(&models.Listing{}).Where("is_active = ?", true)

	if listingType := c.Query("listing_type"); listingType != "" {
		if !utils.ValidateListingType(listingType) {
			utils.BadRequest(c, "Invalid listing type", "listing_type must be one of hotel, apartment, activity, restaurant")
			return
		}
		query = query.Where("listing_type = ?", listingType)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR location LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count listings: %v", err)
		utils.InternalServerError(c, "Failed to fetch listings", nil)
		return
	}
	pagination.SetTotal(total)

	var listings []models.Listing
	if err := query.Order(column + " " + order).
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&listings).Error; err != nil {
		utils.LogError("Failed to fetch listings: %v", err)
		utils.InternalServerError(c, "Failed to fetch listings", nil)
		return
	}
	utils.LogDebug("Found %d listings (page %d)", len(listings), pagination.Page)

	utils.SendPaginatedResponse(c, "Listings retrieved successfully", listings, pagination)
}
