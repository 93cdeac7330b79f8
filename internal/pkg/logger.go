package pkg

import (
	"go.uber.org/zap"
)

// NewLogger 构建进程级 logger；debug=true 时输出开发格式
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
