package service_test

import (
	"errors"
	"fmt"
	"testing"

	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

func TestShareUpsertByGrantee(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "amy@example.com", "Amy")
	grantee := registerUser(t, ctx, "ben@example.com", "Ben")
	svc := service.NewShareService(ctx)

	file := uploadFile(t, ctx, owner, "deck.pdf", "application/pdf", []byte("x"), nil)

	first, err := svc.Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "ben@example.com",
		Permission: "viewer",
	})
	if err != nil {
		t.Fatalf("create share: %v", err)
	}

	if first.UserID != grantee || first.SharedBy != owner {
		t.Errorf("share parties mismatch: %+v", first)
	}

	act := latestActivity(t, ctx, owner)
	if act.Type != "share" || act.Description != "Shared with ben@example.com" {
		t.Errorf("share activity: got %s / %q", act.Type, act.Description)
	}

	// 同一 (条目, 被授权人) 再次授权只更新权限，不产生新记录
	second, err := svc.Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "ben@example.com",
		Permission: "editor",
	})
	if err != nil {
		t.Fatalf("upsert share: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new share: %s vs %s", second.ID, first.ID)
	}

	if second.Permission != "editor" {
		t.Errorf("permission not updated: %s", second.Permission)
	}

	var count int64
	if err := ctxPkg.GetDBClient(ctx).Model(&model.Share{}).
		Where("item_id = ?", file).Count(&count).Error; err != nil {
		t.Fatalf("count shares: %v", err)
	}

	if count != 1 {
		t.Errorf("expected a single share row, got %d", count)
	}
}

func TestShareUnknownGrantee(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "cleo@example.com", "Cleo")
	svc := service.NewShareService(ctx)

	file := uploadFile(t, ctx, owner, "deck.pdf", "application/pdf", []byte("x"), nil)

	_, err := svc.Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "nobody@example.com",
		Permission: "viewer",
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown grantee, got %v", err)
	}
}

func TestShareListResolvesUsers(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "dan@example.com", "Dan")
	grantee := registerUser(t, ctx, "eve@example.com", "Eve")
	ghost := registerUser(t, ctx, "fay@example.com", "Fay")
	svc := service.NewShareService(ctx)

	file := uploadFile(t, ctx, owner, "deck.pdf", "application/pdf", []byte("x"), nil)

	for _, email := range []string{"eve@example.com", "fay@example.com"} {
		if _, err := svc.Create(ctx, owner, &types.ShareCreateRequest{
			ItemID:     file,
			Email:      email,
			Permission: "commenter",
		}); err != nil {
			t.Fatalf("share with %s: %v", email, err)
		}
	}

	// 被授权人账号被删后从列表中静默剔除
	if err := ctxPkg.GetDBClient(ctx).Where("id = ?", ghost).Delete(&model.User{}).Error; err != nil {
		t.Fatalf("delete grantee: %v", err)
	}

	list, err := svc.ListForItem(ctx, file)
	if err != nil {
		t.Fatalf("list shares: %v", err)
	}

	if len(list) != 1 {
		t.Fatalf("expected 1 resolvable grantee, got %d", len(list))
	}

	// 列表条目的 id 是被授权人的用户 ID
	if list[0].ID != grantee || list[0].Name != "Eve" || list[0].Email != "eve@example.com" {
		t.Errorf("unexpected grantee entry: %+v", list[0])
	}

	if list[0].Permission != "commenter" {
		t.Errorf("unexpected permission: %s", list[0].Permission)
	}
}

func TestShareRevoke(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "gil@example.com", "Gil")
	grantee := registerUser(t, ctx, "hal@example.com", "Hal")
	svc := service.NewShareService(ctx)
	driveSvc := service.NewDriveService(ctx)

	file := uploadFile(t, ctx, owner, "deck.pdf", "application/pdf", []byte("x"), nil)

	share, err := svc.Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "hal@example.com",
		Permission: "viewer",
	})
	if err != nil {
		t.Fatalf("create share: %v", err)
	}

	if err := svc.Revoke(ctx, share.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	resp, err := driveSvc.ListItems(ctx, grantee, service.ViewShared, nil, "")
	if err != nil {
		t.Fatalf("list shared: %v", err)
	}

	if len(resp.Files) != 0 {
		t.Errorf("revoked share still visible: %+v", resp.Files)
	}

	if err := svc.Revoke(ctx, share.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("double revoke: expected ErrNotFound, got %v", err)
	}
}

func TestCommentsResolveAuthorName(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "ian@example.com", "Ian")
	other := registerUser(t, ctx, "joy@example.com", "Joy")
	svc := service.NewCommentService(ctx)

	file := uploadFile(t, ctx, owner, "notes.txt", "text/plain", []byte("x"), nil)

	first, err := svc.Create(ctx, owner, &types.CommentCreateRequest{FileID: file, Text: "looks good"})
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	if first.UserName != "Ian" || first.Text != "looks good" {
		t.Errorf("unexpected comment: %+v", first)
	}

	if _, err := svc.Create(ctx, other, &types.CommentCreateRequest{FileID: file, Text: "second"}); err != nil {
		t.Fatalf("comment: %v", err)
	}

	// 作者账号被删后留言保留，作者名退化为 Unknown
	if err := ctxPkg.GetDBClient(ctx).Where("id = ?", other).Delete(&model.User{}).Error; err != nil {
		t.Fatalf("delete author: %v", err)
	}

	list, err := svc.List(ctx, file)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(list))
	}

	if list[0].UserName != "Ian" || list[1].UserName != "Unknown" {
		t.Errorf("author names: got %q / %q", list[0].UserName, list[1].UserName)
	}
}

func TestActivityPagination(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "kay@example.com", "Kay")
	svc := service.NewActivityService(ctx)

	for i := 0; i < 25; i++ {
		uploadFile(t, ctx, owner, fmt.Sprintf("a%02d.txt", i), "text/plain", []byte("x"), nil)
	}

	// 缺省一页 20 条，最新在前
	page, err := svc.List(ctx, owner, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(page) != service.DefaultActivityLimit {
		t.Fatalf("default page size: expected %d, got %d", service.DefaultActivityLimit, len(page))
	}

	if page[0].Description != "Uploaded a24.txt" {
		t.Errorf("expected newest first, got %q", page[0].Description)
	}

	rest, err := svc.List(ctx, owner, 20, 20)
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}

	if len(rest) != 5 {
		t.Errorf("second page: expected 5, got %d", len(rest))
	}

	// 别人的活动不可见
	stranger := registerUser(t, ctx, "leo@example.com", "Leo")

	none, err := svc.List(ctx, stranger, 0, 0)
	if err != nil {
		t.Fatalf("list stranger: %v", err)
	}

	if len(none) != 0 {
		t.Errorf("expected no activities for stranger, got %d", len(none))
	}
}
