package handler

import (
	"errors"
	"net/http"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/eventhub"
	"complainthub/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP surface to the services behind it.
type Handler struct {
	Complaints *complaint.Service
	Storage    storage.Storage
	Hub        *eventhub.Manager
	Log        *zap.SugaredLogger

	JWTSecret []byte
	// PublicBaseURL overrides the request host in generated tracking
	// links (QR codes). Falls back to the request's own host.
	PublicBaseURL string
}

func NewHandler(svc *complaint.Service, s storage.Storage, hub *eventhub.Manager, log *zap.SugaredLogger, jwtSecret []byte, publicBaseURL string) *Handler {
	return &Handler{
		Complaints:    svc,
		Storage:       s,
		Hub:           hub,
		Log:           log,
		JWTSecret:     jwtSecret,
		PublicBaseURL: publicBaseURL,
	}
}

// failMutation maps an error onto the {"success":false,...} envelope used
// by mutating endpoints.
func (h *Handler) failMutation(c *gin.Context, err error) {
	switch {
	case complaint.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	default:
		h.Log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}

// failRead maps an error onto the {"error":...} envelope used by
// read-only endpoints.
func (h *Handler) failRead(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.Log.Errorw("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
