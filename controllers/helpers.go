package controllers

import (
	"strconv"

	"github.com/dawit-alemu/tripstay/models"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed in the context by
// AuthMiddleware. The bool is false when the route was wired without it.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.InternalServerError(c, "Invalid user type", nil)
		return models.User{}, false
	}
	return user, true
}

// idParam parses a numeric path parameter. Responds 400 and returns false
// on garbage input.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.LogError("Invalid %s parameter: %q", name, raw)
		utils.BadRequest(c, "Invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}
