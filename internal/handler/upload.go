package handler

import (
	"HelpDesk/internal/repo"
	"HelpDesk/internal/service"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Upload receives one dropzone chunk. The wire contract matches the
// browser client: dzuuid, dzchunkindex, dzchunkbyteoffset,
// dztotalchunkcount, dztotalfilesize plus the raw chunk and order_id.
// Responses are plain text: 200 per chunk, 400 on id reuse at chunk 0,
// 500 on write failure or a failed completion check.
func Upload(c *gin.Context) {
	uploadID := c.PostForm("dzuuid")
	if uploadID == "" {
		c.String(http.StatusBadRequest, "missing dzuuid")
		return
	}
	chunkIndex, err := strconv.Atoi(c.PostForm("dzchunkindex"))
	if err != nil || chunkIndex < 0 {
		c.String(http.StatusBadRequest, "invalid dzchunkindex")
		return
	}
	byteOffset, err := strconv.ParseInt(c.PostForm("dzchunkbyteoffset"), 10, 64)
	if err != nil || byteOffset < 0 {
		c.String(http.StatusBadRequest, "invalid dzchunkbyteoffset")
		return
	}
	totalChunks, err := strconv.Atoi(c.PostForm("dztotalchunkcount"))
	if err != nil || totalChunks <= 0 {
		c.String(http.StatusBadRequest, "invalid dztotalchunkcount")
		return
	}
	totalSize, err := strconv.ParseInt(c.PostForm("dztotalfilesize"), 10, 64)
	if err != nil || totalSize < 0 {
		c.String(http.StatusBadRequest, "invalid dztotalfilesize")
		return
	}
	orderID, err := strconv.ParseUint(c.PostForm("order_id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid order_id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "missing file chunk")
		return
	}

	req := service.ChunkRequest{
		UploadID:    uploadID,
		FileName:    fileHeader.Filename,
		ChunkIndex:  chunkIndex,
		ByteOffset:  byteOffset,
		TotalChunks: totalChunks,
		TotalSize:   totalSize,
	}

	dir, err := service.DatedStagingDir(time.Now())
	if err != nil {
		log.Printf("upload %s: staging dir failed: %v", uploadID, err)
		c.String(http.StatusInternalServerError, "could not write the file to disk")
		return
	}

	chunk, err := fileHeader.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, "could not read the chunk")
		return
	}
	writeErr := service.WriteChunk(dir, req, chunk)
	chunk.Close()
	if writeErr != nil {
		if errors.Is(writeErr, service.ErrConflict) {
			c.String(http.StatusBadRequest, "File already exists")
			return
		}
		log.Printf("upload %s: chunk %d write failed: %v", uploadID, chunkIndex, writeErr)
		c.String(http.StatusInternalServerError, "could not write the file to disk")
		return
	}

	if !service.IsFinalChunk(req) {
		c.String(http.StatusOK, "Chunk upload successful")
		return
	}

	// Completion is serialized per upload id: a retransmitted final
	// chunk must not race the promote/register step.
	lock := repo.NewRedisLock(repo.Redis, "lock:complete:"+uploadID, 30*time.Second)
	ctx := c.Request.Context()
	if err := lock.Lock(ctx); err != nil {
		c.String(http.StatusInternalServerError, "lock failed: "+err.Error())
		return
	}
	defer lock.Unlock(ctx)

	file, err := service.CompleteUpload(ctx, dir, req, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSizeMismatch):
			log.Printf("upload %s: completed with size mismatch, declared %d", uploadID, totalSize)
			c.String(http.StatusInternalServerError, "Size mismatch")
		case errors.Is(err, service.ErrTooLarge):
			c.String(http.StatusInternalServerError, "File too large")
		case errors.Is(err, service.ErrTooManyFiles):
			c.String(http.StatusInternalServerError, "Too many files for order")
		case errors.Is(err, service.ErrNotFound):
			c.String(http.StatusInternalServerError, "Order does not exist")
		default:
			log.Printf("upload %s: completion failed: %v", uploadID, err)
			c.String(http.StatusInternalServerError, "could not complete the upload")
		}
		return
	}

	log.Printf("upload %s: file %s stored as %s", uploadID, file.OriginalName, file.Hash)
	c.String(http.StatusOK, "Chunk upload successful")
}
