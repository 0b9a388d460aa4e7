package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iac-appeals/aip-sync/internal/codec"
	"github.com/iac-appeals/aip-sync/internal/http/dto"
	"github.com/iac-appeals/aip-sync/internal/http/middleware"
	"github.com/iac-appeals/aip-sync/internal/service"
)

type EvidenceHandler struct {
	appeals  service.UpdateAppealService
	evidence service.EvidenceService
}

func NewEvidenceHandler(appeals service.UpdateAppealService, evidence service.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{appeals: appeals, evidence: evidence}
}

// Upload stores a file and registers it in the aggregate's document map. The
// caller attaches the returned file id to whichever section it belongs to.
func (h *EvidenceHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()
	token := middleware.UserToken(c)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	content, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer content.Close()

	uploaded, err := h.evidence.Upload(ctx, token, appeal, file.Filename, content)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload document"})
		return
	}

	// The document map changed; persist before responding so the id resolves
	// on the next request.
	if err := h.appeals.SaveSession(ctx, token, appeal); err != nil {
		slog.ErrorContext(ctx, "failed to save appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save appeal session"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadEvidenceResponse(uploaded))
}

func (h *EvidenceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	token := middleware.UserToken(c)
	fileID := c.Param("fileId")

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	if err := h.evidence.Delete(ctx, token, appeal, fileID); err != nil {
		if errors.Is(err, codec.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete document"})
		return
	}

	c.Status(http.StatusNoContent)
}

// View streams a stored document's bytes, resolving the internal file id
// through the document map.
func (h *EvidenceHandler) View(c *gin.Context) {
	ctx := c.Request.Context()
	token := middleware.UserToken(c)
	fileID := c.Param("fileId")

	appeal, err := h.appeals.GetSession(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read appeal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read appeal session"})
		return
	}

	body, contentType, err := h.evidence.Fetch(ctx, token, appeal, fileID)
	if err != nil {
		if errors.Is(err, codec.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch document"})
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		slog.WarnContext(ctx, "failed to stream document", "error", err, "file_id", fileID)
	}
}
