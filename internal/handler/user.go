package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/model"
	"HelpDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateUser registers a new account. Admin only.
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	user := model.User{
		UserName:      req.Username,
		Password:      req.Password,
		Name:          req.Name,
		SecondName:    req.SecondName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		InternalPhone: req.InternalPhone,
		RoleID:        req.RoleID,
		DepartmentID:  req.DepartmentID,
		PositionID:    req.PositionID,
	}
	if err := service.CreateUser(&user); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, user)
}

// ListUsers returns every account with its references. Admin only.
func ListUsers(c *gin.Context) {
	users, err := service.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, users)
}

// UpdateUser changes a user's role, department or position. Admin only.
func UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	user, err := service.UpdateUserRefs(id, req.RoleID, req.DepartmentID, req.PositionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, user)
}
