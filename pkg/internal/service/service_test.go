package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/drivevault/pkg/configs"
	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/storage"
	dbc "github.com/yeisme/drivevault/pkg/internal/storage/db"
	kvc "github.com/yeisme/drivevault/pkg/internal/storage/kv"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// newTestContext 构造带内存数据库与内存 KV 的请求上下文.
func newTestContext(t *testing.T) context.Context {
	t.Helper()

	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	// 单连接，避免共享内存库被提前回收
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store, err := kvc.NewKVStore(context.Background(), kvc.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create kv: %v", err)
	}

	mgr := &storage.Manager{
		DB: &dbc.Client{DB: gdb},
		KV: &kvc.Client{KVStore: store},
	}

	return ctxPkg.WithStorageManager(context.Background(), mgr)
}

// registerUser 注册测试用户并返回其 ID.
func registerUser(t *testing.T, ctx context.Context, email, name string) string {
	t.Helper()

	resp, err := service.NewAuthService(ctx).Register(ctx, &types.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}

	return resp.User.ID
}

// uploadFile 上传测试文件并返回其 ID.
func uploadFile(t *testing.T, ctx context.Context, ownerID, name, mimeType string, content []byte, folderID *string) string {
	t.Helper()

	resp, err := service.NewFileService(ctx).Upload(ctx, ownerID, name, mimeType, content, folderID)
	if err != nil {
		t.Fatalf("upload %s: %v", name, err)
	}

	return resp.ID
}

// createFolder 创建测试文件夹并返回其 ID.
func createFolder(t *testing.T, ctx context.Context, ownerID, name string, parentID *string) string {
	t.Helper()

	resp, err := service.NewFolderService(ctx).Create(ctx, ownerID, &types.FolderCreateRequest{
		Name:     name,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("create folder %s: %v", name, err)
	}

	return resp.ID
}

// latestActivity 返回调用者最近一条活动记录.
func latestActivity(t *testing.T, ctx context.Context, userID string) types.ActivityResponse {
	t.Helper()

	acts, err := service.NewActivityService(ctx).List(ctx, userID, 1, 0)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}

	if len(acts) == 0 {
		t.Fatal("expected at least one activity entry")
	}

	return acts[0]
}
