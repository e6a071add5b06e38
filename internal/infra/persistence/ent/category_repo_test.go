package ent

import (
	"context"
	"testing"

	"github.com/xyhcode/gocms/ent/enttest"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// 分类树通过 parent_id 指向父分类：
// parent 边解析到父行，children 边解析到持有外键的子行。
func TestCategoryTreeEdges(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:category_edges?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	defer client.Close()
	ctx := context.Background()

	parent := client.Category.Create().
		SetID(1).
		SetName("编程").
		SaveX(ctx)
	child := client.Category.Create().
		SetID(2).
		SetName("Go").
		SetParentID(parent.ID).
		SaveX(ctx)

	gotParent := child.QueryParent().OnlyX(ctx)
	if gotParent.ID != parent.ID {
		t.Errorf("子分类的 parent 边解析到 ID=%d, 期望 %d", gotParent.ID, parent.ID)
	}

	children := parent.QueryChildren().AllX(ctx)
	if len(children) != 1 || children[0].ID != child.ID {
		t.Errorf("父分类的 children 边 = %v, 期望仅含 ID=%d", children, child.ID)
	}

	if n := parent.QueryParent().CountX(ctx); n != 0 {
		t.Errorf("顶级分类不应有父分类, 实际解析到 %d 个", n)
	}
}

func TestCategoryRepositoryMapsParentID(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:category_repo?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	defer client.Close()
	ctx := context.Background()

	client.Category.Create().SetID(1).SetName("编程").SaveX(ctx)
	client.Category.Create().SetID(2).SetName("生活").SetParentID(1).SaveX(ctx)

	repo := NewEntCategoryRepository(client)
	categories, err := repo.FindAllOrderedByName(ctx)
	if err != nil {
		t.Fatalf("FindAllOrderedByName() 返回错误: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("分类数 = %d, 期望 2", len(categories))
	}

	for _, c := range categories {
		switch c.ID {
		case 1:
			if c.ParentID != nil {
				t.Errorf("顶级分类的 ParentID = %v, 期望 nil", *c.ParentID)
			}
		case 2:
			if c.ParentID == nil || *c.ParentID != 1 {
				t.Errorf("子分类的 ParentID = %v, 期望 1", c.ParentID)
			}
		}
	}
}
