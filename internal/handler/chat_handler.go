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

type ChatHandler struct {
	svc *service.ChatService
}

type CreateChatReq struct {
	Name      string `json:"name" binding:"required"`
	IsPrivate bool   `json:"is_private"`
}

func NewChatHandler(engine *permission.Engine) *ChatHandler {
	return &ChatHandler{
		svc: service.NewChatService(engine),
	}
}

// Create 建群接口，创建者自动入群
func (h *ChatHandler) Create(c *gin.Context) {
	var req CreateChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	chat, err := h.svc.Create(c.Request.Context(), currentUser(c), req.Name, req.IsPrivate)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": chat.ID})
}

func (h *ChatHandler) Get(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}

	chat, err := h.svc.Get(c.Request.Context(), currentUser(c), chatID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         chat.ID,
		"name":       chat.Name,
		"owner_id":   chat.OwnerID,
		"is_private": chat.IsPrivate,
	})
}

func (h *ChatHandler) Update(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), currentUser(c), chatID, req.Name, req.IsPrivate); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ChatHandler) Delete(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), chatID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ChatHandler) Join(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Join(c.Request.Context(), currentUser(c), chatID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Invite 群主拉人进群
func (h *ChatHandler) Invite(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Invite(c.Request.Context(), currentUser(c), chatID, req.UserID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ChatHandler) Leave(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Leave(c.Request.Context(), currentUser(c), chatID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SendMessage 群内发言
func (h *ChatHandler) SendMessage(c *gin.Context) {
	chatID, ok := pathID(c, "id")
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

	msg, err := h.svc.SendMessage(c.Request.Context(), currentUser(c), chatID, req.Body)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": msg.ID})
}

// ListMessages 游标分页拉取群消息
func (h *ChatHandler) ListMessages(c *gin.Context) {
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	rows, next, err := h.svc.ListMessages(c.Request.Context(), currentUser(c), chatID, cursor, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(m model.ChatMessage, _ int) gin.H {
		return gin.H{"id": m.ID, "sender_id": m.SenderID, "body": m.Body, "created_at": m.CreatedAt}
	})
	c.JSON(http.StatusOK, gin.H{"messages": list, "next_cursor": next})
}

func (h *ChatHandler) EditMessage(c *gin.Context) {
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

	if err := h.svc.EditMessage(c.Request.Context(), currentUser(c), messageID, req.Body); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteMessage(c.Request.Context(), currentUser(c), messageID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
