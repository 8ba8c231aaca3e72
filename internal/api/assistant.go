package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/assistant"
)

type AssistantHandler struct {
	engine *assistant.Engine
}

func NewAssistantHandler(engine *assistant.Engine) *AssistantHandler {
	return &AssistantHandler{engine: engine}
}

func (h *AssistantHandler) StartSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.engine.StartSession())
}

func (h *AssistantHandler) GetSession(c *gin.Context) {
	s, err := h.engine.Session(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *AssistantHandler) EndSession(c *gin.Context) {
	h.engine.EndSession(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}

type askRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask blocks for the assistant's typing delay; a client that disconnects
// meanwhile gets no response appended.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.engine.Ask(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
