// Package cache 提供基于键值存储的泛型缓存实现.
//
// 该包提供了类型安全的缓存操作，支持任意类型的缓存值.
// 底层使用 sonic 序列化/反序列化，支持TTL（生存时间）设置.
// 主要用于缓存盘内列表查询（视图、搜索）的结果，缓存键由
// ListingKey 按 owner/view/query 散列生成.
//
// 基本用法:
//
//	c := cache.NewCache(kvStore)
//
//	key := cache.ListingKey(ownerID, "drive", query)
//	items, err := cache.GetOrSet(ctx, c, key, func() (ItemList, error) {
//	    return listFromDB(ctx, ownerID, query)
//	}, 30*time.Second)
//
// 错误处理:
//   - 网络错误、连接错误等会通过error返回
//   - 序列化/反序列化错误会被包装并返回
//   - 缓存未命中不会被视为错误
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"

	"github.com/yeisme/drivevault/pkg/internal/storage/kv"
)

// DefaultListingTTL 列表缓存的默认过期时间，写操作会主动失效，
// TTL 只兜底遗漏的失效路径.
const DefaultListingTTL = 30 * time.Second

// Cache 基于KV存储的缓存实现.
type Cache struct {
	kvStore kv.KVStore
}

// NewCache 创建一个新的缓存实例.
func NewCache(kvStore kv.KVStore) *Cache {
	return &Cache{
		kvStore: kvStore,
	}
}

// ListingKey 生成列表查询的缓存键.
// owner 与 query 经 xxhash 折叠，避免用户输入直接进入键空间.
func ListingKey(ownerID, view, query string) string {
	h := xxhash.New()
	_, _ = h.WriteString(ownerID)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(query)

	return fmt.Sprintf("listing:%s:%x", view, h.Sum64())
}

// ListingPrefix 返回某视图下所有列表缓存键的前缀，供整体失效使用.
func ListingPrefix(view string) string {
	return "listing:" + view + ":"
}

// Get 泛型获取缓存值.
func Get[T any](ctx context.Context, c *Cache, key string) (T, error) {
	var zero T

	data, err := c.kvStore.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := sonic.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return value, nil
}

// Set 泛型设置缓存值.
func Set[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return c.kvStore.Set(ctx, key, data, ttl)
}

// GetOrSet 获取缓存值，如果不存在则通过 getter 取数并回填.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, getter func() (T, error), ttl time.Duration) (T, error) {
	var zero T

	if value, err := Get[T](ctx, c, key); err == nil {
		return value, nil
	}

	value, err := getter()
	if err != nil {
		return zero, err
	}

	if setErr := Set(ctx, c, key, value, ttl); setErr != nil {
		// 缓存失败，但仍返回值
		return value, nil
	}

	return value, nil
}

// Delete 删除缓存键.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.kvStore.Delete(ctx, key)
}

// Exists 检查缓存键是否存在.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	return c.kvStore.Exists(ctx, key)
}

// InvalidateListings 删除所有列表缓存键，写操作完成后调用.
// 底层 KV 的 Keys("") 语义不一，这里统一取全量后按前缀过滤.
func InvalidateListings(ctx context.Context, c *Cache) error {
	keys, err := c.kvStore.Keys(ctx, "")
	if err != nil {
		return err
	}

	for _, key := range keys {
		if !strings.HasPrefix(key, "listing:") {
			continue
		}

		if delErr := c.kvStore.Delete(ctx, key); delErr != nil {
			return delErr
		}
	}

	return nil
}

// Clear 清空缓存（如果支持）.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kvStore.Keys(ctx, "*")
	if err != nil {
		return err
	}

	for _, key := range keys {
		if delErr := c.kvStore.Delete(ctx, key); delErr != nil {
			return delErr
		}
	}

	return nil
}
