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

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func NewPostHandler(engine *permission.Engine) *PostHandler {
	return &PostHandler{
		svc: service.NewPostService(engine),
	}
}

// CreateUserPost 在某用户的主页墙上发帖
func (h *PostHandler) CreateUserPost(c *gin.Context) {
	wallOwnerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreateUserPost(c.Request.Context(), currentUser(c), wallOwnerID, req.Title, req.Content)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

// CreateCommunityPost 在社区墙上发帖
func (h *PostHandler) CreateCommunityPost(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreateCommunityPost(c.Request.Context(), currentUser(c), communityID, req.Title, req.Content)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.svc.Get(c.Request.Context(), currentUser(c), postID)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                 post.ID,
		"author_id":          post.AuthorID,
		"owner_user_id":      post.OwnerUserID,
		"owner_community_id": post.OwnerCommunityID,
		"title":              post.Title,
		"content":            post.Content,
		"created_at":         post.CreatedAt,
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), currentUser(c), postID, req.Title, req.Content); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUser(c), postID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// ListCommunityWall 社区墙帖子列表（游标分页）
func (h *PostHandler) ListCommunityWall(c *gin.Context) {
	communityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	lastID, _ := strconv.ParseUint(c.Query("last_id"), 10, 64)
	lastTS, _ := strconv.ParseInt(c.Query("last_created_at"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	rows, err := h.svc.ListCommunityWall(c.Request.Context(), currentUser(c), communityID, lastID, lastTS, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": postList(rows)})
}

// ListUserWall 用户主页墙帖子列表（页码分页）
func (h *PostHandler) ListUserWall(c *gin.Context) {
	wallOwnerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	rows, err := h.svc.ListUserWall(c.Request.Context(), currentUser(c), wallOwnerID, (page-1)*size, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": postList(rows)})
}

func postList(rows []model.Post) []gin.H {
	return lo.Map(rows, func(p model.Post, _ int) gin.H {
		return gin.H{
			"id":         p.ID,
			"author_id":  p.AuthorID,
			"title":      p.Title,
			"created_at": p.CreatedAt,
		}
	})
}

// AddComment 评论帖子
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.AddComment(c.Request.Context(), currentUser(c), postID, req.Content)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": comment.ID})
}

func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	rows, next, err := h.svc.ListComments(c.Request.Context(), currentUser(c), postID, cursor, size)
	if err != nil {
		writeErr(c, err)
		return
	}

	list := lo.Map(rows, func(cm model.PostComment, _ int) gin.H {
		return gin.H{"id": cm.ID, "author_id": cm.AuthorID, "content": cm.Content, "created_at": cm.CreatedAt}
	})
	c.JSON(http.StatusOK, gin.H{"comments": list, "next_cursor": next})
}

func (h *PostHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.UpdateComment(c.Request.Context(), currentUser(c), commentID, req.Content); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), currentUser(c), commentID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
