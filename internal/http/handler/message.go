package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatApp/internal/service"
)

type MessageHandler struct {
	messages MessageService
	log      *slog.Logger
}

func NewMessageHandler(messages MessageService, log *slog.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, log: orDiscard(log)}
}

type sendRequest struct {
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Send handles POST /api/send/.
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.messages.Send(c.Request.Context(), service.SendInput{
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		Body:      req.Message,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		messageFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "Message sent successfully",
		"id":       res.ID,
		"response": res.Response,
	})
}

// History handles GET /api/history/?sender=&receiver=.
func (h *MessageHandler) History(c *gin.Context) {
	msgs, err := h.messages.History(c.Request.Context(), c.Query("sender"), c.Query("receiver"))
	if err != nil {
		historyFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Delete handles DELETE /api/delete/:message_id.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("message_id"), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "message_id must be an integer")
		return
	}
	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		deleteFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Message deleted successfully"})
}

// ListAll handles GET /api/messages/.
func (h *MessageHandler) ListAll(c *gin.Context) {
	msgs, err := h.messages.AllMessages(c.Request.Context())
	if err != nil {
		messageFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ListForUser handles GET /api/users/:username/messages.
func (h *MessageHandler) ListForUser(c *gin.Context) {
	msgs, err := h.messages.AllForUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		messageFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
