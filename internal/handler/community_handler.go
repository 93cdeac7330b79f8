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

type CommunityHandler struct {
	svc *service.CommunityService
}

type CreateCommunityReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

func NewCommunityHandler(engine *permission.Engine) *CommunityHandler {
	return &CommunityHandler{
		svc: service.NewCommunityService(engine),
	}
}

// Create 建社区接口
func (h *CommunityHandler) Create(c *gin.Context) {
	var req CreateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community, err := h.svc.Create(c.Request.Context(), currentUser(c), req.Name, req.Description, req.IsPrivate)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": community.ID})
}

func (h *CommunityHandler) Get(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	community, err := h.svc.Get(c.Request.Context(), currentUser(c), communityID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          community.ID,
		"name":        community.Name,
		"description": community.Description,
		"owner_id":    community.OwnerID,
		"is_private":  community.IsPrivate,
	})
}

// List 社区列表（页码分页）
func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	rows, err := h.svc.List(c.Request.Context(), (page-1)*size, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(m model.Community, _ int) gin.H {
		return gin.H{"id": m.ID, "name": m.Name, "is_private": m.IsPrivate}
	})
	c.JSON(http.StatusOK, gin.H{"communities": list})
}

func (h *CommunityHandler) Update(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Description string `json:"description"`
		IsPrivate   bool   `json:"is_private"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), currentUser(c), communityID, req.Description, req.IsPrivate); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Delete(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), communityID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetBanned 平台管理员封禁/解封社区
func (h *CommunityHandler) SetBanned(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Banned *bool `json:"banned" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SetBanned(c.Request.Context(), currentUser(c), communityID, *req.Banned); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Join(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Join(c.Request.Context(), currentUser(c), communityID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Leave(c.Request.Context(), currentUser(c), communityID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetMemberRole owner 提拔/降级社区管理员
func (h *CommunityHandler) SetMemberRole(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserID uint64 `json:"user_id" binding:"required"`
		Role   int    `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SetMemberRole(c.Request.Context(), currentUser(c), communityID, req.UserID, req.Role); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Invite 社区管理员邀请用户
func (h *CommunityHandler) Invite(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Invite(c.Request.Context(), currentUser(c), communityID, req.ReceiverID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) ListInvitations(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.svc.ListInvitations(c.Request.Context(), currentUser(c), communityID)
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(inv model.CommunityInvitation, _ int) gin.H {
		return gin.H{"id": inv.ID, "sender_id": inv.SenderID, "receiver_id": inv.ReceiverID}
	})
	c.JSON(http.StatusOK, gin.H{"invitations": list})
}

// ListMyInvitations 我收到的社区邀请
func (h *CommunityHandler) ListMyInvitations(c *gin.Context) {
	rows, err := h.svc.ListMyInvitations(c.Request.Context(), currentUser(c))
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(inv model.CommunityInvitation, _ int) gin.H {
		return gin.H{"id": inv.ID, "community_id": inv.CommunityID, "sender_id": inv.SenderID}
	})
	c.JSON(http.StatusOK, gin.H{"invitations": list})
}

func (h *CommunityHandler) AcceptInvitation(c *gin.Context) {
	invitationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.AcceptInvitation(c.Request.Context(), currentUser(c), invitationID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) DeleteInvitation(c *gin.Context) {
	invitationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteInvitation(c.Request.Context(), currentUser(c), invitationID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
