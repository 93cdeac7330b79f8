package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Nexus_Social/internal/middleware"
	"Nexus_Social/internal/service"
)

// currentUser 读取鉴权中间件写入的用户ID
func currentUser(c *gin.Context) uint64 {
	v, _ := c.Get(middleware.ContextUserIDKey)
	id, _ := v.(uint64)
	return id
}

// pathID 解析路径里的数字ID；0 视为非法
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid " + name})
		return 0, false
	}
	return id, true
}

// writeErr 业务错误到 HTTP 状态码的统一映射
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": "forbidden"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrSelfTarget):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
