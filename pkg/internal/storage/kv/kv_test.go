package kv_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/drivevault/pkg/internal/storage/kv"
)

func newMemoryStore(t *testing.T) kv.KVStore {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("expected v1, got %s", got)
	}

	exists, err := store.Exists(ctx, "k1")
	if err != nil || !exists {
		t.Errorf("expected key to exist, exists=%v err=%v", exists, err)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "k1"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := store.Get(ctx, "short"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("expected expired key to be gone, got %v", err)
	}

	exists, err := store.Exists(ctx, "short")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}

	if exists {
		t.Error("expected expired key to not exist")
	}
}

func TestMemoryKVGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k", []byte("orig"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	first, _ := store.Get(ctx, "k")
	first[0] = 'X'

	second, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if !bytes.Equal(second, []byte("orig")) {
		t.Errorf("stored value mutated through returned slice: %s", second)
	}
}

func TestUnsupportedKVType(t *testing.T) {
	if _, err := kv.NewKVStore(context.Background(), kv.KVType("bolt"), nil); err == nil {
		t.Error("expected error for unregistered KV type")
	}
}

func BenchmarkMemoryKV(b *testing.B) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}

	payload := bytes.Repeat([]byte("x"), 1024)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		key := fmt.Sprintf("bench-%d", i)
		if err := store.Set(ctx, key, payload, 0); err != nil {
			b.Fatalf("set failed: %v", err)
		}

		if _, err := store.Get(ctx, key); err != nil {
			b.Fatalf("get failed: %v", err)
		}

		if err := store.Delete(ctx, key); err != nil {
			b.Fatalf("delete failed: %v", err)
		}
	}

	_ = store.Close()
}
