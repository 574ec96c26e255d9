package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeStoreUnavailable,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeStoreUnavailable,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、连接故障）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal         = 50000 // 内部错误
	ErrCodeStoreUnavailable = 50001 // 存储不可用(连接/事务基础设施故障)

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeGenreNotFound  = 40402 // 分类不存在
	ErrCodeBookNotFound   = 40403 // 图书不存在
	ErrCodeReaderNotFound = 40404 // 读者不存在
	ErrCodeLoanNotFound   = 40405 // 借阅记录不存在或已归还

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError    = 40000 // 业务错误(通用)
	ErrCodeOutOfStock       = 40001 // 没有可借副本
	ErrCodeReferentialBlock = 40002 // 存在关联记录,删除被阻止
	ErrCodeEmailDuplicate   = 40003 // 邮箱已存在
	ErrCodeISBNDuplicate    = 40004 // ISBN已存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定/校验失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal         = New(ErrCodeInternal, "系统内部错误")
	ErrStoreUnavailable = New(ErrCodeStoreUnavailable, "存储服务不可用")

	// 资源不存在
	ErrAuthorNotFound = New(ErrCodeAuthorNotFound, "作者不存在")
	ErrGenreNotFound  = New(ErrCodeGenreNotFound, "图书分类不存在")
	ErrBookNotFound   = New(ErrCodeBookNotFound, "图书不存在")
	ErrReaderNotFound = New(ErrCodeReaderNotFound, "读者不存在")
	ErrLoanNotFound   = New(ErrCodeLoanNotFound, "借阅记录不存在或已归还")

	// 业务规则
	ErrOutOfStock       = New(ErrCodeOutOfStock, "图书暂无可借副本")
	ErrReferentialBlock = New(ErrCodeReferentialBlock, "存在关联记录,无法删除")
	ErrEmailDuplicate   = New(ErrCodeEmailDuplicate, "邮箱已被注册")
	ErrISBNDuplicate    = New(ErrCodeISBNDuplicate, "ISBN号已存在")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成StoreUnavailable错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
