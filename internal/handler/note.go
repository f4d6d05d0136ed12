package handler

import (
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateNote saves a personal note for the caller.
func CreateNote(c *gin.Context) {
	var form dto.NoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	identity := utils.CurrentIdentity(c)
	note, err := service.CreateNote(identity.UserID, form.Title, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, note)
}

// ListNotes returns the caller's notes.
func ListNotes(c *gin.Context) {
	identity := utils.CurrentIdentity(c)
	notes, err := service.ListNotes(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, notes)
}

// DeleteNote removes one of the caller's notes.
func DeleteNote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	identity := utils.CurrentIdentity(c)
	if err := service.DeleteNote(id, identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// CreateRecommendation saves a reusable answer snippet for the caller.
func CreateRecommendation(c *gin.Context) {
	var form dto.NoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	identity := utils.CurrentIdentity(c)
	rec, err := service.CreateRecommendation(identity.UserID, form.Title, form.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, rec)
}

// ListRecommendations returns the caller's recommendations.
func ListRecommendations(c *gin.Context) {
	identity := utils.CurrentIdentity(c)
	recs, err := service.ListRecommendations(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, recs)
}
