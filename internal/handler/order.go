package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/internal/task"
	"HelpDesk/utils"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateOrder registers a new support order and fires the admin notice.
func CreateOrder(c *gin.Context) {
	var form dto.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	identity := utils.CurrentIdentity(c)
	order, err := service.CreateOrder(identity.UserID, form.Title, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// Fire and forget: the notice never blocks or fails the creation.
	go task.NotifyOrderCreated(context.Background(), order, identity.Username)

	utils.Success(c, dto.OrderView{Order: *order, Status: string(service.StatusNew)})
}

// ListOrders lists orders visible to the caller, with an optional
// effective-status filter.
func ListOrders(c *gin.Context) {
	identity := utils.CurrentIdentity(c)
	orders, err := service.ListOrders(identity.UserID, identity.Role, c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]dto.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, dto.OrderView{
			Order:  orders[i],
			Status: string(service.EffectiveStatus(&orders[i])),
		})
	}
	utils.Success(c, views)
}

// GetOrder returns one order if the caller may see it.
func GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	identity := utils.CurrentIdentity(c)
	order, err := service.GetOrder(id, identity.UserID, identity.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, dto.OrderView{
		Order:  *order,
		Status: string(service.EffectiveStatus(order)),
	})
}

// GetEditOrder loads an order through the creator-edit clause; grouped
// orders read as not found for their creator.
func GetEditOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	identity := utils.CurrentIdentity(c)
	order, err := service.GetEditableOrder(id, identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, dto.OrderView{Order: *order, Status: string(service.StatusNew)})
}

// UpdateOrder edits title/description via the creator-edit path.
func UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var form dto.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	identity := utils.CurrentIdentity(c)
	order, err := service.UpdateOrder(id, identity.UserID, form.Title, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, dto.OrderView{Order: *order, Status: string(service.StatusNew)})
}

// DeleteOrder removes an ungrouped order of the caller, files included.
func DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	identity := utils.CurrentIdentity(c)
	if err := service.DeleteOrder(c.Request.Context(), id, identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// DeleteOrderFiles removes the files of an ungrouped order of the caller.
func DeleteOrderFiles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	identity := utils.CurrentIdentity(c)
	if err := service.DeleteOrderFilesForCreator(c.Request.Context(), id, identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"order_id": id})
}
