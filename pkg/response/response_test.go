package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

func perform(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// TestSuccess 成功响应Code=0,HTTP 200
func TestSuccess(t *testing.T) {
	w, resp := perform(t, func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

// TestError 测试业务错误码到HTTP状态码的映射
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus int
	}{
		{"资源不存在映射404", apperrors.ErrBookNotFound, apperrors.ErrCodeBookNotFound, http.StatusNotFound},
		{"借阅记录不存在映射404", apperrors.ErrLoanNotFound, apperrors.ErrCodeLoanNotFound, http.StatusNotFound},
		{"邮箱冲突映射409", apperrors.ErrEmailDuplicate, apperrors.ErrCodeEmailDuplicate, http.StatusConflict},
		{"ISBN冲突映射409", apperrors.ErrISBNDuplicate, apperrors.ErrCodeISBNDuplicate, http.StatusConflict},
		{"无可借副本映射400", apperrors.ErrOutOfStock, apperrors.ErrCodeOutOfStock, http.StatusBadRequest},
		{"引用保护映射400", apperrors.ErrReferentialBlock, apperrors.ErrCodeReferentialBlock, http.StatusBadRequest},
		{"参数错误映射400", apperrors.ErrInvalidParams, apperrors.ErrCodeInvalidParams, http.StatusBadRequest},
		{"存储故障映射500", apperrors.ErrStoreUnavailable, apperrors.ErrCodeStoreUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := perform(t, func(c *gin.Context) {
				Error(c, tt.err)
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

// TestError_UnknownError 未包装的底层错误按存储故障处理,细节不外泄
func TestError_UnknownError(t *testing.T) {
	w, resp := perform(t, func(c *gin.Context) {
		Error(c, errors.New("dial tcp 127.0.0.1:3306: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrCodeStoreUnavailable, resp.Code)
	assert.NotContains(t, resp.Message, "3306", "内部错误细节不应返回给客户端")
}
