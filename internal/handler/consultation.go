package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateConsultation records a consultation held by the caller.
func CreateConsultation(c *gin.Context) {
	var form dto.ConsultationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	identity := utils.CurrentIdentity(c)
	consultation, err := service.CreateConsultation(
		identity.UserID, form.Title, form.Description,
		form.Organization, form.RegNumber, form.Person,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, consultation)
}

// ListConsultations returns the caller's consultations, or a broader
// slice depending on the scope query: "department" widens to the
// caller's department, "all" is moderator only.
func ListConsultations(c *gin.Context) {
	identity := utils.CurrentIdentity(c)

	switch c.Query("scope") {
	case "department":
		consultations, err := service.ListDepartmentConsultations(identity.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, consultations)
	case "all":
		if !identity.Role.IsModerator() {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		consultations, err := service.ListAllConsultations()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, consultations)
	default:
		consultations, err := service.ListMyConsultations(identity.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, consultations)
	}
}
