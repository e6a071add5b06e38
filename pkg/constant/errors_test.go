package constant

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Fields: map[string]string{
		"name":  "validation.min",
		"body":  "validation.required",
		"email": "validation.email",
	}}

	// 字段按名称排序，输出稳定
	want := "字段校验失败: body: validation.required, email: validation.email, name: validation.min"
	if got := ve.Error(); got != want {
		t.Errorf("Error() = %q, 期望 %q", got, want)
	}
}

func TestAsValidationError(t *testing.T) {
	ve := &ValidationError{Fields: map[string]string{"body": "validation.required"}}

	got, ok := AsValidationError(ve)
	if !ok || got != ve {
		t.Error("直接传入 *ValidationError 应被识别")
	}

	wrapped := fmt.Errorf("提交评论失败: %w", ve)
	got, ok = AsValidationError(wrapped)
	if !ok || got != ve {
		t.Error("包裹后的 *ValidationError 应被识别")
	}

	if _, ok := AsValidationError(errors.New("别的错误")); ok {
		t.Error("普通错误不应被识别为 ValidationError")
	}
}
