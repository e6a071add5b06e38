package bootstrap

import (
	"context"
	"testing"

	"github.com/xyhcode/gocms/ent/enttest"
	"github.com/xyhcode/gocms/internal/configdef"
	ent_impl "github.com/xyhcode/gocms/internal/infra/persistence/ent"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestInitializeDatabaseSyncsParameters(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:bootstrap_sync?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	defer client.Close()
	ctx := context.Background()

	t.Setenv("GOCMS_PARAMETER_DEFAULT_TITLE", "环境变量标题")

	repo := ent_impl.NewEntParameterRepository(client)
	b := NewBootstrapper(client, repo)
	if err := b.InitializeDatabase(); err != nil {
		t.Fatalf("InitializeDatabase() 返回错误: %v", err)
	}

	for _, def := range configdef.AllParameters {
		p, err := repo.FindByName(ctx, def.Key.String())
		if err != nil {
			t.Fatalf("配置项 %q 同步后仍不存在: %v", def.Key, err)
		}

		want := def.Value
		if def.Key.String() == "TITLE" {
			want = "环境变量标题"
		}
		if p.Value != want {
			t.Errorf("配置项 %q 的值 = %q, 期望 %q", def.Key, p.Value, want)
		}
	}

	// 再跑一次应是幂等的：已存在的配置项不会重复写入
	if err := b.InitializeDatabase(); err != nil {
		t.Fatalf("重复执行 InitializeDatabase() 返回错误: %v", err)
	}
	if n := client.Parameter.Query().CountX(ctx); n != len(configdef.AllParameters) {
		t.Errorf("参数行数 = %d, 期望 %d", n, len(configdef.AllParameters))
	}
}
