package handler

import (
	"HelpDesk/config"
	"HelpDesk/internal/dto"
	"HelpDesk/internal/service"
	"HelpDesk/utils"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Download streams a stored file by its hash.
func Download(c *gin.Context) {
	hash := c.Param("hash")
	ctx := c.Request.Context()

	file, err := service.GetFileByHash(ctx, hash)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	body, info, err := service.OpenFile(ctx, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer body.Close()

	name := utils.SanitizeHeaderFilename(file.OriginalName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", service.ContentTypeFor(file.OriginalName))
	if info.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		log.Printf("download %s: stream aborted: %v", hash, err)
	}
}

// ListFiles pages through all stored files, newest first.
func ListFiles(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage := config.AppConfig.FilesPerPage

	files, total, err := service.ListFiles(page, perPage)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, dto.FileListResponse{
		Files:   files,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}
