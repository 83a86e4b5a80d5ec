package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swasthya/models"
	"swasthya/services/dialog"
	"swasthya/utils"
)

// ChatHandler serves the turn endpoint.
type ChatHandler struct {
	Engine *dialog.Engine
}

func NewChatHandler(engine *dialog.Engine) *ChatHandler {
	return &ChatHandler{Engine: engine}
}

// HandleTurn runs one conversation turn. The endpoint always answers with a
// success envelope carrying the full merged session state; failures surface
// only as degraded response text inside it.
func (h *ChatHandler) HandleTurn(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable payload behaves like an empty one: the flow falls
		// back to the start menu.
		logger.Warn("Malformed chat payload", zap.Error(err))
		req = models.ChatRequest{}
	}

	state := req.ToState()
	logger.Debug("Processing turn",
		zap.String("step", string(state.Step)),
		zap.String("selected", state.SelectedOption),
		zap.String("request_id", c.GetString("requestID")))

	result := h.Engine.Run(c.Request.Context(), state)

	logger.Debug("Turn complete",
		zap.String("step", string(result.Step)),
		zap.String("request_id", c.GetString("requestID")))
	c.JSON(http.StatusOK, result)
}
