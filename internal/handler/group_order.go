package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// CreateGroupOrder opens a group order assigned to a performer.
func CreateGroupOrder(c *gin.Context) {
	var form dto.GroupOrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	group, err := service.CreateGroupOrder(form.Title, form.Description, form.PerformerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, group)
}

// UpdateGroupOrder edits a group order's title, description, performer.
func UpdateGroupOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var form dto.GroupOrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	group, err := service.UpdateGroupOrder(id, form.Title, form.Description, form.PerformerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, group)
}

// ListGroupOrders lists group orders with an optional status filter.
func ListGroupOrders(c *gin.Context) {
	groups, err := service.ListGroupOrders(c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, groups)
}

// GetGroupOrder returns one group order with orders and results.
func GetGroupOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group, err := service.GetGroupOrder(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, group)
}

// SelectGroupOrderStatus drives the status state machine. Unrecognized
// or same-state targets read as not found; closing without a positive
// result is rejected with the status unchanged.
func SelectGroupOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group, err := service.ChangeGroupOrderStatus(id, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, group)
}

// AttachOrder puts an ungrouped order into a group order.
func AttachOrder(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}
	if err := service.AttachOrder(orderID, groupID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"group_order_id": groupID, "order_id": orderID})
}

// AddResult attaches an outcome record to a group order.
func AddResult(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var form dto.ResultForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	result, err := service.AddResult(id, form.Title, form.Description, form.Positive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, result)
}

// UpdateResult edits an existing result.
func UpdateResult(c *gin.Context) {
	resultID, ok := paramID(c, "resultID")
	if !ok {
		return
	}
	var form dto.ResultForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	result, err := service.UpdateResult(resultID, form.Title, form.Description, form.Positive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, result)
}

// SetGroupOrderServices replaces a group order's linked services.
func SetGroupOrderServices(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var form dto.GroupOrderServicesForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := service.SetGroupOrderServices(id, form.ServiceIDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"group_order_id": id})
}

// ListPerformers returns assignable performers for group orders.
func ListPerformers(c *gin.Context) {
	users, err := service.ListPerformers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, users)
}
