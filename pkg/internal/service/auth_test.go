package service_test

import (
	"errors"
	"testing"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAuthService(ctx)

	resp, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.User.Email != "alice@example.com" || resp.User.Name != "Alice" {
		t.Errorf("profile did not round-trip: %+v", resp.User)
	}

	if resp.Token == "" {
		t.Error("expected a token on registration")
	}

	login, err := svc.Login(ctx, &types.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if login.User.ID != resp.User.ID {
		t.Errorf("login resolved a different user: %s vs %s", login.User.ID, resp.User.ID)
	}

	me, err := svc.Me(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}

	if me.Email != "alice@example.com" {
		t.Errorf("unexpected profile: %+v", me)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAuthService(ctx)

	registerUser(t, ctx, "bob@example.com", "Bob")

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob Again",
		Password: "whatever1",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAuthService(ctx)

	registerUser(t, ctx, "carol@example.com", "Carol")

	// 密码错误与邮箱不存在必须返回同一个错误
	_, wrongPass := svc.Login(ctx, &types.LoginRequest{Email: "carol@example.com", Password: "wrong"})
	_, noUser := svc.Login(ctx, &types.LoginRequest{Email: "ghost@example.com", Password: "wrong"})

	if !errors.Is(wrongPass, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}

	if !errors.Is(noUser, service.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestStorageUsage(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "dave@example.com", "Dave")

	uploadFile(t, ctx, owner, "report.pdf", "application/pdf", make([]byte, 100), nil)
	uploadFile(t, ctx, owner, "photo.png", "image/png", make([]byte, 200), nil)
	uploadFile(t, ctx, owner, "clip.mp4", "video/mp4", make([]byte, 300), nil)
	uploadFile(t, ctx, owner, "data.bin", "application/octet-stream", make([]byte, 50), nil)
	trashed := uploadFile(t, ctx, owner, "old.txt", "text/plain", make([]byte, 10), nil)

	if err := service.NewItemService(ctx).Delete(ctx, owner, trashed, false); err != nil {
		t.Fatalf("trash file: %v", err)
	}

	usage, err := service.NewStorageService(ctx).Usage(ctx, owner)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}

	// 回收站中的文件仍计入 used
	if usage.Used != 660 {
		t.Errorf("expected used 660, got %d", usage.Used)
	}

	if usage.Total != int64(100)<<30 {
		t.Errorf("expected 100 GiB total, got %d", usage.Total)
	}

	// breakdown 只统计未回收文件
	want := map[string]int64{
		service.CategoryDocuments: 100,
		service.CategoryImages:    200,
		service.CategoryVideos:    300,
		service.CategoryOther:     50,
	}

	for category, size := range want {
		if usage.Breakdown[category] != size {
			t.Errorf("breakdown[%s]: expected %d, got %d", category, size, usage.Breakdown[category])
		}
	}
}
