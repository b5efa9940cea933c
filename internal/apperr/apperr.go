package apperr

import "errors"

// 领域错误分类
// service 层返回这些哨兵错误（可用fmt.Errorf("%w: ...")附加上下文），
// handler 层用 errors.Is 映射为对应的HTTP状态码
var (
	// ErrNotFound 实体不存在 -> 404
	ErrNotFound = errors.New("not found")
	// ErrConflict 唯一约束冲突（重复插入） -> 400
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput 参数或状态值非法 -> 400
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoOpRejected 重复设置相同状态被拒绝 -> 400
	ErrNoOpRejected = errors.New("no-op rejected")
	// ErrInvalidCredentials 凭证错误 -> 401
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// E 构造携带用户可读消息的领域错误
// Error() 仅返回消息本身，errors.Is 仍可匹配到对应的哨兵错误
func E(kind error, msg string) error {
	return &domainError{kind: kind, msg: msg}
}

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }

