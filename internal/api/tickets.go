package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

type TicketHandler struct {
	desk *resources.TicketDesk
	hub  *ws.Hub
}

func NewTicketHandler(desk *resources.TicketDesk, hub *ws.Hub) *TicketHandler {
	return &TicketHandler{desk: desk, hub: hub}
}

type ticketMessageRequest struct {
	Sender string `json:"sender" binding:"required"`
	Body   string `json:"body" binding:"required"`
}

func (h *TicketHandler) AppendMessage(c *gin.Context) {
	if err := h.desk.Tickets.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	var req ticketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	msg, err := h.desk.AppendMessage(c.Request.Context(), id, req.Sender, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify("tickets", "message_added", id)
	c.JSON(http.StatusCreated, msg)
}
