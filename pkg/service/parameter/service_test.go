package parameter

import (
	"context"
	"errors"
	"testing"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
)

// fakeParameterRepo 是内存实现的参数仓储，供测试使用。
type fakeParameterRepo struct {
	params  map[string]string
	findErr error
	saveErr error
}

func newFakeParameterRepo() *fakeParameterRepo {
	return &fakeParameterRepo{params: make(map[string]string)}
}

func (r *fakeParameterRepo) FindByName(ctx context.Context, name string) (*model.Parameter, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	v, ok := r.params[name]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return &model.Parameter{Name: name, Value: v}, nil
}

func (r *fakeParameterRepo) FindAll(ctx context.Context) ([]*model.Parameter, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*model.Parameter, 0, len(r.params))
	for k, v := range r.params {
		out = append(out, &model.Parameter{Name: k, Value: v})
	}
	return out, nil
}

func (r *fakeParameterRepo) Save(ctx context.Context, name, value string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.params[name] = value
	return nil
}

func TestLoadAllDefaults(t *testing.T) {
	repo := newFakeParameterRepo()
	svc := NewService(repo)

	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	tests := []struct {
		key  constant.ParameterKey
		want string
	}{
		{key: constant.KeyTitle, want: "Blog title"},
		{key: constant.KeySubtitle, want: "Blog subtitle"},
		{key: constant.KeySiteURL, want: ""},
		{key: constant.KeyPostsPerPage, want: "10"},
	}
	for _, tt := range tests {
		if got := svc.Get(tt.key); got != tt.want {
			t.Errorf("Get(%s) = %q, 期望 %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadAllOverlaysDatabase(t *testing.T) {
	repo := newFakeParameterRepo()
	repo.params[constant.KeyTitle.String()] = "我的博客"
	repo.params[constant.KeyPostsPerPage.String()] = "5"
	svc := NewService(repo)

	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	if got := svc.Get(constant.KeyTitle); got != "我的博客" {
		t.Errorf("数据库值应覆盖默认值, Get(TITLE) = %q", got)
	}
	if got := svc.GetInt(constant.KeyPostsPerPage, 10); got != 5 {
		t.Errorf("GetInt(POSTS_PER_PAGE) = %d, 期望 5", got)
	}
	// 未被数据库覆盖的键保留默认值
	if got := svc.Get(constant.KeySubtitle); got != "Blog subtitle" {
		t.Errorf("Get(SUBTITLE) = %q, 期望默认值", got)
	}
}

func TestLoadAllDatabaseFailureFallsBackToDefaults(t *testing.T) {
	repo := newFakeParameterRepo()
	repo.findErr = errors.New("connection refused")
	svc := NewService(repo)

	err := svc.LoadAll(context.Background())
	if err == nil {
		t.Fatal("数据库不可用时 LoadAll() 应返回错误")
	}
	if got := svc.Get(constant.KeyTitle); got != "Blog title" {
		t.Errorf("降级后 Get(TITLE) = %q, 期望默认值", got)
	}
}

func TestGetInt(t *testing.T) {
	repo := newFakeParameterRepo()
	repo.params[constant.KeyPostsPerPage.String()] = "not-a-number"
	svc := NewService(repo)
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	if got := svc.GetInt(constant.KeyPostsPerPage, 10); got != 10 {
		t.Errorf("非整数值应回退, GetInt = %d, 期望 10", got)
	}
	if got := svc.GetInt(constant.ParameterKey("UNKNOWN_KEY"), 7); got != 7 {
		t.Errorf("未知键应回退, GetInt = %d, 期望 7", got)
	}
}

func TestSetPersistsAndUpdatesCache(t *testing.T) {
	repo := newFakeParameterRepo()
	svc := NewService(repo)
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	if err := svc.Set(context.Background(), constant.KeyTitle, "新标题"); err != nil {
		t.Fatalf("Set() 返回错误: %v", err)
	}
	if got := svc.Get(constant.KeyTitle); got != "新标题" {
		t.Errorf("Set 后 Get(TITLE) = %q, 期望 \"新标题\"", got)
	}
	if got := repo.params[constant.KeyTitle.String()]; got != "新标题" {
		t.Errorf("Set 后数据库值 = %q, 期望 \"新标题\"", got)
	}
}

func TestSetFailureLeavesCacheUntouched(t *testing.T) {
	repo := newFakeParameterRepo()
	svc := NewService(repo)
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if err := svc.Set(context.Background(), constant.KeyTitle, "新标题"); err == nil {
		t.Fatal("落库失败时 Set() 应返回错误")
	}
	if got := svc.Get(constant.KeyTitle); got != "Blog title" {
		t.Errorf("落库失败后缓存不应变化, Get(TITLE) = %q", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo := newFakeParameterRepo()
	svc := NewService(repo)
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() 返回错误: %v", err)
	}

	all := svc.All()
	all[constant.KeyTitle.String()] = "篡改"
	if got := svc.Get(constant.KeyTitle); got != "Blog title" {
		t.Errorf("修改 All() 的返回值不应影响缓存, Get(TITLE) = %q", got)
	}
}
