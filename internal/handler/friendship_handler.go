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

type FriendshipHandler struct {
	svc *service.FriendshipService
}

func NewFriendshipHandler(engine *permission.Engine) *FriendshipHandler {
	return &FriendshipHandler{
		svc: service.NewFriendshipService(engine),
	}
}

// SendRequest 发起好友请求
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	var req struct {
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SendRequest(c.Request.Context(), currentUser(c), req.ReceiverID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FriendshipHandler) Accept(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Accept(c.Request.Context(), currentUser(c), requestID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FriendshipHandler) Decline(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Decline(c.Request.Context(), currentUser(c), requestID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FriendshipHandler) Unfriend(c *gin.Context) {
	peerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Unfriend(c.Request.Context(), currentUser(c), peerID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// ListFriends 游标分页的好友列表，返回对端用户ID
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID := currentUser(c)
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	rows, next, err := h.svc.ListFriends(c.Request.Context(), userID, cursor, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	friends := lo.Map(rows, func(f model.Friendship, _ int) uint64 {
		if f.UserAID == userID {
			return f.UserBID
		}
		return f.UserAID
	})
	c.JSON(http.StatusOK, gin.H{"friends": friends, "next_cursor": next})
}

func (h *FriendshipHandler) ListRequests(c *gin.Context) {
	rows, err := h.svc.ListRequests(c.Request.Context(), currentUser(c))
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(r model.FriendshipRequest, _ int) gin.H {
		return gin.H{"id": r.ID, "sender_id": r.SenderID, "created_at": r.CreatedAt}
	})
	c.JSON(http.StatusOK, gin.H{"requests": list})
}
