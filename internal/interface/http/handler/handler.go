package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// parseIDParam 解析路径中的:id参数
// 非正整数直接返回参数错误响应,调用方收到ok=false时应立即return
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID参数: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
