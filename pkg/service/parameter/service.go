// Package parameter 实现配置参数服务：数据库中的参数表加上代码内默认值，
// 全部缓存在内存中，读取永不触库。
package parameter

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/xyhcode/gocms/internal/configdef"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

// Service 定义了配置参数服务的接口。
// 所有读取都命中内存缓存；数据库的外部变更通过周期性的 Reload 收敛。
type Service interface {
	// LoadAll 从代码定义和数据库加载全部参数到内存缓存。
	LoadAll(ctx context.Context) error

	// Get 根据键获取参数值，未知键返回空字符串。
	Get(key constant.ParameterKey) string

	// GetInt 根据键获取整数参数值，缺失或无法解析时返回 fallback。
	GetInt(key constant.ParameterKey, fallback int) int

	// All 返回当前缓存的全部参数的副本。
	All() map[string]string

	// Set 持久化一个参数并立即更新缓存。
	Set(ctx context.Context, key constant.ParameterKey, value string) error
}

type service struct {
	repo  repository.ParameterRepository
	cache map[string]string
	mu    sync.RWMutex
}

// NewService 是 parameter service 的构造函数。
func NewService(repo repository.ParameterRepository) Service {
	return &service{
		repo:  repo,
		cache: make(map[string]string),
	}
}

// LoadAll 先铺默认值，再用数据库里的值覆盖。
// 数据库不可用时退回默认值并返回错误，调用方决定是否容忍。
func (s *service) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newCache := make(map[string]string)
	for _, def := range configdef.AllParameters {
		newCache[def.Key.String()] = def.Value
	}

	dbParams, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cache = newCache
		log.Printf("⚠️ 警告: 从数据库加载参数失败: %v。服务将使用代码中定义的默认值。", err)
		return err
	}

	for _, p := range dbParams {
		newCache[p.Name] = p.Value
	}

	s.cache = newCache
	return nil
}

// Get 根据键获取参数值
func (s *service) Get(key constant.ParameterKey) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key.String()]
}

// GetInt 根据键获取整数参数值
func (s *service) GetInt(key constant.ParameterKey, fallback int) int {
	s.mu.RLock()
	valueStr, ok := s.cache[key.String()]
	s.mu.RUnlock()
	if !ok || valueStr == "" {
		return fallback
	}
	n, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ 警告: 参数 '%s' 的值 '%s' 不是整数，使用默认值 %d。", key, valueStr, fallback)
		return fallback
	}
	return n
}

// All 返回全部参数的副本，调用方可以随意修改返回值。
func (s *service) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.cache))
	for k, v := range s.cache {
		out[k] = v
	}
	return out
}

// Set 先落库再更新缓存，保证本进程读到自己的写入。
func (s *service) Set(ctx context.Context, key constant.ParameterKey, value string) error {
	if err := s.repo.Save(ctx, key.String(), value); err != nil {
		return err
	}
	s.mu.Lock()
	s.cache[key.String()] = value
	s.mu.Unlock()
	return nil
}
