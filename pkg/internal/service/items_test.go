package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

func TestUpdateRenameAndStar(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "kim@example.com", "Kim")
	itemSvc := service.NewItemService(ctx)
	driveSvc := service.NewDriveService(ctx)

	file := uploadFile(t, ctx, owner, "draft.txt", "text/plain", []byte("x"), nil)

	newName := "final.txt"
	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{Name: &newName}); err != nil {
		t.Fatalf("rename: %v", err)
	}

	act := latestActivity(t, ctx, owner)
	if act.Type != "edit" || act.Description != "Renamed to final.txt" {
		t.Errorf("rename activity: got %s / %q", act.Type, act.Description)
	}

	// 星标与重命名同时出现时，只记星标活动
	star := true
	another := "ignored.txt"

	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{Name: &another, Starred: &star}); err != nil {
		t.Fatalf("star+rename: %v", err)
	}

	act = latestActivity(t, ctx, owner)
	if act.Type != "star" || act.Description != "Starred ignored.txt" {
		t.Errorf("star activity: got %s / %q", act.Type, act.Description)
	}

	unstar := false
	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{Starred: &unstar}); err != nil {
		t.Fatalf("unstar: %v", err)
	}

	act = latestActivity(t, ctx, owner)
	if !strings.HasPrefix(act.Description, "Unstarred ") {
		t.Errorf("unstar activity: got %q", act.Description)
	}

	resp, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, nil, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Files) != 1 || resp.Files[0].Name != "ignored.txt" {
		t.Errorf("expected renamed file, got %+v", resp.Files)
	}
}

func TestUpdateWrongKindFieldIsNoOp(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "liam@example.com", "Liam")
	itemSvc := service.NewItemService(ctx)
	driveSvc := service.NewDriveService(ctx)

	folder := createFolder(t, ctx, owner, "Docs", nil)
	target := createFolder(t, ctx, owner, "Target", nil)
	file := uploadFile(t, ctx, owner, "a.txt", "text/plain", []byte("x"), nil)

	// 对文件夹传 folderId、对文件传 parentId，都静默忽略
	if err := itemSvc.Update(ctx, owner, folder, &types.ItemUpdateRequest{FolderID: &target}); err != nil {
		t.Fatalf("update folder: %v", err)
	}

	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{ParentID: &target}); err != nil {
		t.Fatalf("update file: %v", err)
	}

	root, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, nil, "")
	if err != nil {
		t.Fatalf("list root: %v", err)
	}

	// 两者都还在根目录
	if len(root.Folders) != 2 {
		t.Errorf("expected both folders at root, got %+v", root.Folders)
	}

	if len(root.Files) != 1 {
		t.Errorf("expected file at root, got %+v", root.Files)
	}
}

func TestUpdateMoveItems(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "mary@example.com", "Mary")
	itemSvc := service.NewItemService(ctx)
	driveSvc := service.NewDriveService(ctx)

	folder := createFolder(t, ctx, owner, "Inbox", nil)
	sub := createFolder(t, ctx, owner, "Sub", nil)
	file := uploadFile(t, ctx, owner, "move-me.txt", "text/plain", []byte("x"), nil)

	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{FolderID: &folder}); err != nil {
		t.Fatalf("move file: %v", err)
	}

	if err := itemSvc.Update(ctx, owner, sub, &types.ItemUpdateRequest{ParentID: &folder}); err != nil {
		t.Fatalf("move folder: %v", err)
	}

	inside, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, &folder, "")
	if err != nil {
		t.Fatalf("list folder: %v", err)
	}

	if len(inside.Files) != 1 || inside.Files[0].ID != file {
		t.Errorf("file not moved: %+v", inside.Files)
	}

	if len(inside.Folders) != 1 || inside.Folders[0].ID != sub {
		t.Errorf("folder not moved: %+v", inside.Folders)
	}

	// 移回根目录：空字符串等价于"无上级"
	rootRef := ""
	if err := itemSvc.Update(ctx, owner, file, &types.ItemUpdateRequest{FolderID: &rootRef}); err != nil {
		t.Fatalf("move file to root: %v", err)
	}

	root, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, nil, "")
	if err != nil {
		t.Fatalf("list root: %v", err)
	}

	found := false
	for _, f := range root.Files {
		if f.ID == file {
			found = true
		}
	}

	if !found {
		t.Error("file not moved back to root")
	}
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "nina@example.com", "Nina")

	folder := createFolder(t, ctx, owner, "Loop", nil)

	err := service.NewItemService(ctx).Update(ctx, owner, folder, &types.ItemUpdateRequest{ParentID: &folder})
	if !errors.Is(err, service.ErrSelfParent) {
		t.Errorf("expected ErrSelfParent, got %v", err)
	}
}

func TestMutationsRequireOwnership(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "oscar@example.com", "Oscar")
	stranger := registerUser(t, ctx, "peggy@example.com", "Peggy")
	itemSvc := service.NewItemService(ctx)

	file := uploadFile(t, ctx, owner, "secret.txt", "text/plain", []byte("x"), nil)

	// 他人条目与不存在的条目报同一个错误
	name := "stolen.txt"
	if err := itemSvc.Update(ctx, stranger, file, &types.ItemUpdateRequest{Name: &name}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}

	if err := itemSvc.Delete(ctx, stranger, file, false); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}

	if err := itemSvc.Restore(ctx, stranger, file); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("restore: expected ErrNotFound, got %v", err)
	}

	if err := itemSvc.Update(ctx, owner, "no-such-id", &types.ItemUpdateRequest{Name: &name}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("missing id: expected ErrNotFound, got %v", err)
	}

	// 共享授权不赋予变更权限
	_, err := service.NewShareService(ctx).Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "peggy@example.com",
		Permission: "editor",
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if err := itemSvc.Delete(ctx, stranger, file, false); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("grantee delete: expected ErrNotFound, got %v", err)
	}
}

func TestTrashRestoreRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "quinn@example.com", "Quinn")
	itemSvc := service.NewItemService(ctx)
	driveSvc := service.NewDriveService(ctx)

	file := uploadFile(t, ctx, owner, "cycle.txt", "text/plain", []byte("x"), nil)

	if err := itemSvc.Delete(ctx, owner, file, false); err != nil {
		t.Fatalf("trash: %v", err)
	}

	act := latestActivity(t, ctx, owner)
	if act.Description != "Moved cycle.txt to trash" {
		t.Errorf("trash activity: got %q", act.Description)
	}

	drive, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, nil, "")
	if err != nil {
		t.Fatalf("list drive: %v", err)
	}

	if len(drive.Files) != 0 {
		t.Error("trashed file still visible in drive view")
	}

	if err := itemSvc.Restore(ctx, owner, file); err != nil {
		t.Fatalf("restore: %v", err)
	}

	act = latestActivity(t, ctx, owner)
	if act.Type != "edit" || act.Description != "Restored cycle.txt" {
		t.Errorf("restore activity: got %s / %q", act.Type, act.Description)
	}

	drive, err = driveSvc.ListItems(ctx, owner, service.ViewDrive, nil, "")
	if err != nil {
		t.Fatalf("list drive: %v", err)
	}

	if len(drive.Files) != 1 {
		t.Error("restored file missing from drive view")
	}
}

func TestPermanentDeleteRefundsStorage(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "rita@example.com", "Rita")
	itemSvc := service.NewItemService(ctx)
	storageSvc := service.NewStorageService(ctx)

	file := uploadFile(t, ctx, owner, "big.bin", "application/octet-stream", make([]byte, 500), nil)

	if err := itemSvc.Delete(ctx, owner, file, true); err != nil {
		t.Fatalf("permanent delete: %v", err)
	}

	act := latestActivity(t, ctx, owner)
	if act.Description != "Permanently deleted big.bin" {
		t.Errorf("delete activity: got %q", act.Description)
	}

	usage, err := storageSvc.Usage(ctx, owner)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}

	if usage.Used != 0 {
		t.Errorf("expected storage refunded to 0, got %d", usage.Used)
	}

	// 彻底删除后条目不可再操作
	if err := itemSvc.Restore(ctx, owner, file); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("restore after permanent delete: expected ErrNotFound, got %v", err)
	}
}

func TestFolderDeleteDoesNotCascade(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "sam@example.com", "Sam")
	itemSvc := service.NewItemService(ctx)
	driveSvc := service.NewDriveService(ctx)

	parent := createFolder(t, ctx, owner, "Doomed", nil)
	child := uploadFile(t, ctx, owner, "orphan.txt", "text/plain", []byte("x"), &parent)

	if err := itemSvc.Delete(ctx, owner, parent, true); err != nil {
		t.Fatalf("delete folder: %v", err)
	}

	// 子条目保留，挂在已不存在的上级之下
	inside, err := driveSvc.ListItems(ctx, owner, service.ViewDrive, &parent, "")
	if err != nil {
		t.Fatalf("list orphaned scope: %v", err)
	}

	if len(inside.Files) != 1 || inside.Files[0].ID != child {
		t.Errorf("expected orphaned child to remain, got %+v", inside.Files)
	}
}
