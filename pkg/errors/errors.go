package errors

import "errors"

// ErrSequenceConflict 参考号序列分配冲突：并发创建撞号，重试一次后仍失败
var ErrSequenceConflict = errors.New("参考号分配冲突，请重试")
