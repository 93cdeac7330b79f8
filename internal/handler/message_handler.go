package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/service"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(engine *permission.Engine) *MessageHandler {
	return &MessageHandler{
		svc: service.NewMessageService(engine),
	}
}

// Send 发私信
func (h *MessageHandler) Send(c *gin.Context) {
	var req struct {
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
		Body       string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.Send(c.Request.Context(), currentUser(c), req.ReceiverID, req.Body)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": msg.ID})
}

// Read 读单条私信，接收方打开即标记已读
func (h *MessageHandler) Read(c *gin.Context) {
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	msg, err := h.svc.Read(c.Request.Context(), currentUser(c), messageID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          msg.ID,
		"sender_id":   msg.SenderID,
		"receiver_id": msg.ReceiverID,
		"body":        msg.Body,
		"read_at":     msg.ReadAt,
		"created_at":  msg.CreatedAt,
	})
}

// ListConversation 和某人的会话（游标分页），拉取即清零未读
func (h *MessageHandler) ListConversation(c *gin.Context) {
	peerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	rows, next, err := h.svc.ListConversation(c.Request.Context(), currentUser(c), peerID, cursor, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(m model.PrivateMessage, _ int) gin.H {
		return gin.H{"id": m.ID, "sender_id": m.SenderID, "body": m.Body, "read_at": m.ReadAt, "created_at": m.CreatedAt}
	})
	c.JSON(http.StatusOK, gin.H{"messages": list, "next_cursor": next})
}

// Unread 各会话未读数
func (h *MessageHandler) Unread(c *gin.Context) {
	totals, err := h.svc.UnreadTotals(c.Request.Context(), currentUser(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": totals})
}

func (h *MessageHandler) Edit(c *gin.Context) {
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Edit(c.Request.Context(), currentUser(c), messageID, req.Body); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), messageID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
