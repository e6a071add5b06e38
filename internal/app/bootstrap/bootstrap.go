// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/internal/configdef"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

type Bootstrapper struct {
	entClient *ent.Client
	paramRepo repository.ParameterRepository
}

func NewBootstrapper(entClient *ent.Client, paramRepo repository.ParameterRepository) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
		paramRepo: paramRepo,
	}
}

func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 (配置注册表模式) ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.syncParameters()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// syncParameters 检查并同步配置项，确保所有在代码中定义的配置项都存在于数据库中。
func (b *Bootstrapper) syncParameters() {
	log.Println("--- 开始同步站点配置 (Parameter 表)... ---")
	ctx := context.Background()
	newlyAdded := 0

	// 从 configdef 循环所有定义
	for _, def := range configdef.AllParameters {
		_, err := b.paramRepo.FindByName(ctx, def.Key.String())
		if err == nil {
			continue
		}
		if !errors.Is(err, constant.ErrNotFound) {
			log.Printf("⚠️ 失败: 查询配置项 '%s' 失败: %v", def.Key, err)
			continue
		}

		// 配置项在数据库中不存在，创建它
		value := def.Value

		// 检查环境变量覆盖
		envKey := "GOCMS_PARAMETER_DEFAULT_" + strings.ToUpper(string(def.Key))
		if envValue, ok := os.LookupEnv(envKey); ok {
			value = envValue
			log.Printf("    - 配置项 '%s' 由环境变量覆盖。", def.Key)
		}

		_, createErr := b.entClient.Parameter.Create().
			SetName(def.Key.String()).
			SetValue(value).
			SetComment(def.Comment).
			Save(ctx)

		if createErr != nil {
			log.Printf("⚠️ 失败: 新增默认配置项 '%s' 失败: %v", def.Key, createErr)
		} else {
			log.Printf("    -新增配置项: '%s' 已写入数据库。", def.Key)
			newlyAdded++
		}
	}

	if newlyAdded > 0 {
		log.Printf("--- 站点配置同步完成，共新增 %d 个配置项。---", newlyAdded)
	} else {
		log.Println("--- 站点配置同步完成，无需新增配置项。---")
	}
}
