package service_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "tina@example.com", "Tina")
	fileSvc := service.NewFileService(ctx)

	content := []byte("hello drive")

	resp, err := fileSvc.Upload(ctx, owner, "hello.txt", "text/plain", content, nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if resp.Size != int64(len(content)) {
		t.Errorf("size: expected %d, got %d", len(content), resp.Size)
	}

	if resp.URL == nil || *resp.URL != "/api/files/"+resp.ID+"/download" {
		t.Errorf("unexpected download url: %v", resp.URL)
	}

	if resp.LastOpened != nil {
		t.Error("lastOpened must be null right after upload")
	}

	dl, err := fileSvc.Download(ctx, owner, resp.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	if !bytes.Equal(dl.Content, content) {
		t.Errorf("content did not round-trip: %q", dl.Content)
	}

	if dl.MimeType != "text/plain" || dl.Name != "hello.txt" {
		t.Errorf("metadata mismatch: %+v", dl)
	}

	act := latestActivity(t, ctx, owner)
	if act.Type != "upload" || act.Description != "Uploaded hello.txt" {
		t.Errorf("upload activity: got %s / %q", act.Type, act.Description)
	}
}

func TestDownloadLargeFileSynthesizesPlaceholder(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "uma@example.com", "Uma")
	fileSvc := service.NewFileService(ctx)

	// 达到内联上限的文件只保留元数据
	big := make([]byte, service.InlineContentLimit)

	resp, err := fileSvc.Upload(ctx, owner, "huge.bin", "application/octet-stream", big, nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	dl, err := fileSvc.Download(ctx, owner, resp.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	want := "Simulated content for huge.bin\nSize: 1048576 bytes\nThis is a mock file in the training environment."
	if string(dl.Content) != want {
		t.Errorf("placeholder mismatch:\n got %q\nwant %q", dl.Content, want)
	}
}

func TestDownloadPermissions(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "vic@example.com", "Vic")
	grantee := registerUser(t, ctx, "wendy@example.com", "Wendy")
	stranger := registerUser(t, ctx, "xena@example.com", "Xena")
	fileSvc := service.NewFileService(ctx)

	file := uploadFile(t, ctx, owner, "guarded.txt", "text/plain", []byte("x"), nil)

	// 无授权的第三方拒绝访问
	if _, err := fileSvc.Download(ctx, stranger, file); !errors.Is(err, service.ErrAccessDenied) {
		t.Errorf("stranger download: expected ErrAccessDenied, got %v", err)
	}

	// 任意级别的授权都允许下载
	_, err := service.NewShareService(ctx).Create(ctx, owner, &types.ShareCreateRequest{
		ItemID:     file,
		Email:      "wendy@example.com",
		Permission: "viewer",
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if _, err := fileSvc.Download(ctx, grantee, file); err != nil {
		t.Errorf("grantee download: %v", err)
	}

	if _, err := fileSvc.Download(ctx, owner, "missing"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("missing file: expected ErrNotFound, got %v", err)
	}
}

func TestDownloadSetsLastOpened(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "yuri@example.com", "Yuri")
	fileSvc := service.NewFileService(ctx)
	driveSvc := service.NewDriveService(ctx)

	file := uploadFile(t, ctx, owner, "opened.txt", "text/plain", []byte("x"), nil)

	if _, err := fileSvc.Download(ctx, owner, file); err != nil {
		t.Fatalf("download: %v", err)
	}

	resp, err := driveSvc.ListItems(ctx, owner, service.ViewRecent, nil, "")
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}

	if len(resp.Files) != 1 || resp.Files[0].LastOpened == nil {
		t.Errorf("expected lastOpened set after download, got %+v", resp.Files)
	}
}

func TestPreviewVariants(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "zoe@example.com", "Zoe")
	fileSvc := service.NewFileService(ctx)

	// 图片：data-URI
	img := uploadFile(t, ctx, owner, "pic.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47}, nil)

	preview, err := fileSvc.Preview(ctx, img)
	if err != nil {
		t.Fatalf("preview image: %v", err)
	}

	if preview.Preview == nil || !strings.HasPrefix(*preview.Preview, "data:image/png;base64,") {
		t.Errorf("image preview: got %+v", preview)
	}

	// 文本：解码后的内容
	txt := uploadFile(t, ctx, owner, "readme.txt", "text/plain", []byte("plain words"), nil)

	preview, err = fileSvc.Preview(ctx, txt)
	if err != nil {
		t.Fatalf("preview text: %v", err)
	}

	if preview.Type != "text" || preview.Preview == nil || *preview.Preview != "plain words" {
		t.Errorf("text preview: got %+v", preview)
	}

	// 未保留负载的文本：占位语
	big := make([]byte, service.InlineContentLimit)
	bigTxt := uploadFile(t, ctx, owner, "big.txt", "text/plain", big, nil)

	preview, err = fileSvc.Preview(ctx, bigTxt)
	if err != nil {
		t.Fatalf("preview big text: %v", err)
	}

	if preview.Preview == nil || *preview.Preview != "Preview not available for this file." {
		t.Errorf("big text preview: got %+v", preview)
	}

	// 其他类型：无预览
	bin := uploadFile(t, ctx, owner, "data.bin", "application/octet-stream", []byte("x"), nil)

	preview, err = fileSvc.Preview(ctx, bin)
	if err != nil {
		t.Fatalf("preview binary: %v", err)
	}

	if preview.Preview != nil || preview.Message != "Preview not available" {
		t.Errorf("binary preview: got %+v", preview)
	}
}

// TestPreviewSkipsShareCheck 预览不做授权校验，也不刷新 last_opened_at.
func TestPreviewSkipsShareCheck(t *testing.T) {
	ctx := newTestContext(t)
	owner := registerUser(t, ctx, "abe@example.com", "Abe")
	registerUser(t, ctx, "bea@example.com", "Bea")
	fileSvc := service.NewFileService(ctx)

	file := uploadFile(t, ctx, owner, "open.txt", "text/plain", []byte("visible"), nil)

	if _, err := fileSvc.Preview(ctx, file); err != nil {
		t.Errorf("preview without grant: %v", err)
	}

	var stored model.File
	if err := ctxPkg.GetDBClient(ctx).Where("id = ?", file).First(&stored).Error; err != nil {
		t.Fatalf("load file: %v", err)
	}

	if stored.LastOpenedAt != nil {
		t.Error("preview must not touch last_opened_at")
	}
}
