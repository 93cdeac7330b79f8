package service

import "errors"

var (
	// ErrForbidden 规则判定为否：请求者无权执行该操作
	ErrForbidden = errors.New("forbidden")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrSelfTarget      = errors.New("cannot target self")
)
