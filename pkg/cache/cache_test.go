package cache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/drivevault/pkg/cache"
)

// driveListing 测试用的列表结果结构体.
type driveListing struct {
	FolderIDs []string `json:"folderIds"`
	FileIDs   []string `json:"fileIds"`
}

// mockKVStore 模拟KV存储实现.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, errors.New("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

// TestListingKey 测试列表缓存键的生成.
func TestListingKey(t *testing.T) {
	k1 := cache.ListingKey("user-1", "drive", "report")
	k2 := cache.ListingKey("user-1", "drive", "report")

	if k1 != k2 {
		t.Errorf("same inputs must produce same key: %s vs %s", k1, k2)
	}

	if !strings.HasPrefix(k1, cache.ListingPrefix("drive")) {
		t.Errorf("key %s missing view prefix", k1)
	}

	// 不同 owner / query / view 必须产生不同键
	if k1 == cache.ListingKey("user-2", "drive", "report") {
		t.Error("different owners produced the same key")
	}

	if k1 == cache.ListingKey("user-1", "drive", "budget") {
		t.Error("different queries produced the same key")
	}

	if k1 == cache.ListingKey("user-1", "starred", "report") {
		t.Error("different views produced the same key")
	}
}

// TestCacheRoundTrip 测试 Set 后能 Get 回同样的值.
func TestCacheRoundTrip(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	listing := driveListing{
		FolderIDs: []string{"f1", "f2"},
		FileIDs:   []string{"a", "b", "c"},
	}

	key := cache.ListingKey("user-1", "drive", "")

	if err := cache.Set(ctx, c, key, listing, 0); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	got, err := cache.Get[driveListing](ctx, c, key)
	if err != nil {
		t.Fatalf("Failed to get cache: %v", err)
	}

	if len(got.FolderIDs) != 2 || len(got.FileIDs) != 3 {
		t.Errorf("Retrieved listing %+v does not match original %+v", got, listing)
	}
}

// TestCacheMiss 测试缓存未命中返回错误.
func TestCacheMiss(t *testing.T) {
	c := cache.NewCache(newMockKVStore())

	if _, err := cache.Get[driveListing](context.Background(), c, "nonexistent"); err == nil {
		t.Error("Expected error for nonexistent key")
	}
}

// TestGetOrSet 测试 GetOrSet 只取数一次.
func TestGetOrSet(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	callCount := 0
	getter := func() (driveListing, error) {
		callCount++
		return driveListing{FileIDs: []string{"x"}}, nil
	}

	key := cache.ListingKey("user-1", "recent", "")

	first, err := cache.GetOrSet(ctx, c, key, getter, cache.DefaultListingTTL)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	second, err := cache.GetOrSet(ctx, c, key, getter, cache.DefaultListingTTL)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("Expected getter to be called once, got %d", callCount)
	}

	if len(first.FileIDs) != len(second.FileIDs) {
		t.Errorf("Results don't match: %+v vs %+v", first, second)
	}
}

// TestGetOrSet_GetterError 测试 getter 出错时错误向上传递.
func TestGetOrSet_GetterError(t *testing.T) {
	c := cache.NewCache(newMockKVStore())

	getter := func() (driveListing, error) {
		return driveListing{}, errors.New("getter error")
	}

	if _, err := cache.GetOrSet(context.Background(), c, "k", getter, 0); err == nil {
		t.Error("Expected error from getter")
	}
}

// TestCacheInvalidation 测试删除与存在性检查.
func TestCacheInvalidation(t *testing.T) {
	store := newMockKVStore()
	c := cache.NewCache(store)
	ctx := context.Background()

	key := cache.ListingKey("user-1", "trash", "")

	if err := cache.Set(ctx, c, key, driveListing{}, 0); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	exists, err := c.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("Key should exist before deletion, exists=%v err=%v", exists, err)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Failed to delete cache: %v", err)
	}

	exists, err = c.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Failed to check existence after deletion: %v", err)
	}

	if exists {
		t.Error("Key should not exist after deletion")
	}

	// Clear 清空剩余键
	if err := cache.Set(ctx, c, "a", 1, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := cache.Set(ctx, c, "b", 2, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	if len(store.data) != 0 {
		t.Errorf("Expected 0 items after clear, got %d", len(store.data))
	}
}
