package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/model"
	"HelpDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user and returns a token with its role claim.
func Login(c *gin.Context) {
	var loginRequest dto.LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	user, err := service.FindByUsername(loginRequest.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username/password"})
		return
	}
	if err := service.CheckPassword(loginRequest.Username, loginRequest.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username/password"})
		return
	}
	token, err := utils.GenerateToken(user.ID, user.UserName, model.RoleName(user.Role.Name))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"token":   token,
		"user":    user,
	})
}

// Profile returns the caller's own record.
func Profile(c *gin.Context) {
	identity := utils.CurrentIdentity(c)
	user, err := service.GetUser(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, user)
}
