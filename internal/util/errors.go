package util

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrAccountNotFound   = errors.New("账号不存在")
	ErrAccountDisabled   = errors.New("账号已停用")
	ErrScopeNotFound     = errors.New("账号未配置评分授权")
	ErrGraderMismatch    = errors.New("grader mismatch")
	ErrUnknownGrader     = errors.New("unknown grader")
	ErrOutOfStationScope = errors.New("out of station scope")
	ErrOutOfChainScope   = errors.New("out of chain scope")
	ErrSessionNotFound   = errors.New("exam session not found")
	ErrRubricNotFound    = errors.New("rubric not found for context")
	ErrRubricAmbiguous   = errors.New("more than one active rubric for context")
	ErrScoreNotFound     = errors.New("score not found")
	ErrScoreLocked       = errors.New("locked; regrade required")
	ErrScoreNotLocked    = errors.New("score absent or not locked")
	ErrDuplicatePending  = errors.New("另一条复评申请仍在等待审批")
	ErrRequestNotFound   = errors.New("regrade request not found")
	ErrAlreadyDecided    = errors.New("regrade request already decided")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrStoreUnavailable  = errors.New("score store unavailable")

	// 评分计算的条目级校验
	ErrUnknownRubricItem    = errors.New("item not in rubric")
	ErrScoreValueNotDefined = errors.New("score not defined by rubric item levels")
)

// ValidationError 字段校验失败，一次性列出全部缺失字段
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing field: " + strings.Join(e.Fields, ", ")
}

// DomainError 将领域错误映射为带类别的响应
// 未识别的错误按存储不可用以外的内部错误处理。
func DomainError(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, KindValidation, ve.Error())
		return
	}
	if errors.Is(err, ErrUnknownRubricItem) || errors.Is(err, ErrScoreValueNotDefined) {
		Fail(c, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	switch {
	case errors.Is(err, ErrGraderMismatch),
		errors.Is(err, ErrUnknownGrader),
		errors.Is(err, ErrOutOfStationScope),
		errors.Is(err, ErrOutOfChainScope),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrScopeNotFound):
		Fail(c, http.StatusForbidden, KindAuthorization, err.Error())
	case errors.Is(err, ErrScoreLocked),
		errors.Is(err, ErrScoreNotLocked),
		errors.Is(err, ErrDuplicatePending),
		errors.Is(err, ErrAlreadyDecided):
		Fail(c, http.StatusConflict, KindConflict, err.Error())
	case errors.Is(err, ErrRubricNotFound),
		errors.Is(err, ErrRubricAmbiguous),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrScoreNotFound),
		errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrAccountNotFound):
		Fail(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		Fail(c, http.StatusServiceUnavailable, KindUnavailable, err.Error())
	default:
		LogInternalError(c, err)
	}
}
