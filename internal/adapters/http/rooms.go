package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dkeye/Poker/internal/app"
	"github.com/dkeye/Poker/internal/core"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RoomsHandler struct {
	Creator   *app.RoomCreator
	Directory core.RoomDirectory
}

type createRoomRequest struct {
	AdminUserID string `json:"adminUserId"`
}

type createRoomResponse struct {
	Code        domain.RoomCode `json:"code"`
	Name        domain.RoomName `json:"name"`
	AdminUserID domain.UserID   `json:"adminUserId"`
	RoomID      domain.RoomID   `json:"roomId"`
}

// Create handles POST /api/rooms. The body is optional.
func (h *RoomsHandler) Create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	admin := domain.UserID(strings.TrimSpace(req.AdminUserID))
	if len(admin) > domain.MaxUserIDLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid adminUserId"})
		return
	}

	room, err := h.Creator.Create(c.Request.Context(), admin)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("failed to create room")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room."})
		return
	}
	c.JSON(http.StatusOK, createRoomResponse{
		Code:        room.Code,
		Name:        room.Name,
		AdminUserID: room.AdminUserID,
		RoomID:      room.ID,
	})
}

// Exists handles GET /api/rooms/:code.
func (h *RoomsHandler) Exists(c *gin.Context) {
	code := domain.NormalizeCode(c.Param("code"))
	_, err := h.Directory.FindRoom(c.Request.Context(), code)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"exists": true})
	case errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"exists": false})
	default:
		log.Error().Err(err).Str("module", "adapters.http").Str("room", string(code)).Msg("room lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up room."})
	}
}
