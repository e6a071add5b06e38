package ent

import (
	"testing"
	"time"

	"github.com/xyhcode/gocms/ent"
)

func TestToDomainParameter(t *testing.T) {
	if got := toDomainParameter(nil); got != nil {
		t.Errorf("toDomainParameter(nil) = %v, 期望 nil", got)
	}

	now := time.Now()
	entity := &ent.Parameter{
		ID:        7,
		Name:      "TITLE",
		Value:     "我的博客",
		Comment:   "站点标题",
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := toDomainParameter(entity)
	if got.ID != 7 {
		t.Errorf("ID = %d, 期望 7", got.ID)
	}
	if got.Name != "TITLE" || got.Value != "我的博客" {
		t.Errorf("Name/Value = %q/%q, 期望 TITLE/我的博客", got.Name, got.Value)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Error("时间戳应原样带入领域模型")
	}
}
