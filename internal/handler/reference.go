package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func bindForm(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return false
	}
	return true
}

// Departments.

func CreateDepartment(c *gin.Context) {
	var form dto.DepartmentForm
	if !bindForm(c, &form) {
		return
	}
	department, err := service.CreateDepartment(form.Name, form.Description, form.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, department)
}

func ListDepartments(c *gin.Context) {
	departments, err := service.ListDepartments()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, departments)
}

func UpdateDepartment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var form dto.DepartmentForm
	if !bindForm(c, &form) {
		return
	}
	if err := service.UpdateDepartment(id, form.Name, form.Description, form.OrganizationID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"updated": id})
}

func DeleteDepartment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := service.DeleteDepartment(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// Organizations.

func CreateOrganization(c *gin.Context) {
	var form dto.OrganizationForm
	if !bindForm(c, &form) {
		return
	}
	organization, err := service.CreateOrganization(form.Name, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, organization)
}

func ListOrganizations(c *gin.Context) {
	organizations, err := service.ListOrganizations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, organizations)
}

func DeleteOrganization(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := service.DeleteOrganization(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// Positions.

func CreatePosition(c *gin.Context) {
	var form dto.PositionForm
	if !bindForm(c, &form) {
		return
	}
	position, err := service.CreatePosition(form.Name, form.Description, form.Chief)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, position)
}

func ListPositions(c *gin.Context) {
	positions, err := service.ListPositions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, positions)
}

func DeletePosition(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := service.DeletePosition(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// Services offered by the support team.

func CreateService(c *gin.Context) {
	var form dto.ServiceForm
	if !bindForm(c, &form) {
		return
	}
	svc, err := service.CreateService(form.Name, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, svc)
}

func ListServices(c *gin.Context) {
	services, err := service.ListServices()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, services)
}

func DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := service.DeleteService(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// Consultation themes.

func CreateTheme(c *gin.Context) {
	var form dto.ThemeForm
	if !bindForm(c, &form) {
		return
	}
	identity := utils.CurrentIdentity(c)
	theme, err := service.CreateTheme(identity.UserID, form.Name, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, theme)
}

func ListThemes(c *gin.Context) {
	themes, err := service.ListThemes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, themes)
}

func DeleteTheme(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := service.DeleteTheme(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// Release versions shown on the portal changelog.

func CreateVersion(c *gin.Context) {
	var form dto.VersionForm
	if !bindForm(c, &form) {
		return
	}
	identity := utils.CurrentIdentity(c)
	version, err := service.CreateVersion(identity.UserID, form.Version, form.UserDescription, form.AdminDescription)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, version)
}

func ListVersions(c *gin.Context) {
	versions, err := service.ListVersions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, versions)
}
