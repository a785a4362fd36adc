// Package service 实现业务逻辑：认证、条目管理、视图查询、共享、评论、
// 活动日志与存储用量.各 Service 从请求上下文取用存储客户端，DB 为必需，
// KV 与 MQ 允许缺席（此时跳过缓存与事件发布）.
package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid"

	"github.com/yeisme/drivevault/pkg/cache"
	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/storage/db"
	"github.com/yeisme/drivevault/pkg/internal/storage/kv"
	"github.com/yeisme/drivevault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/queue"
)

// 业务错误，handle 层据此映射 HTTP 状态码.
var (
	// ErrNotFound 条目不存在，或存在但不属于调用者（两者对外不可区分）.
	ErrNotFound = errors.New("item not found")
	// ErrEmailTaken 注册邮箱已被占用.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials 登录失败，不区分邮箱不存在与密码错误.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccessDenied 已认证但无权访问（仅下载路径使用）.
	ErrAccessDenied = errors.New("access denied")
	// ErrSelfParent 文件夹不能以自身为上级.
	ErrSelfParent = errors.New("folder cannot be its own parent")
)

// 全局单例的 ULID 熵源，使用单调递增策略，确保同一毫秒内生成的 ULID 具有排序稳定性。
var ulidEntropy = ulid.Monotonic(crand.Reader, 0)

// newID 生成通用实体主键.
func newID() string {
	return uuid.NewString()
}

// newShareID 生成带前缀的共享授权主键，ULID 保证按创建时间可排序.
func newShareID(t time.Time) string {
	return "sh_" + ulid.MustNew(ulid.Timestamp(t), ulidEntropy).String()
}

// base 聚合各 Service 共用的客户端与横切操作.
type base struct {
	dbc *db.Client
	kvc *kv.Client
	mqc *mq.Client
}

func newBase(c context.Context) base {
	b := base{
		dbc: ctxPkg.GetDBClient(c),
		kvc: ctxPkg.GetKVClient(c),
		mqc: ctxPkg.GetMQClient(c),
	}

	if b.dbc == nil {
		nlog.Logger().Warn().Msg("DB client not initialized, service features limited")
	}

	return b
}

// logActivity 追加一条活动记录.写路径上同步执行，失败只记日志不阻断主流程.
func (b *base) logActivity(ctx context.Context, userID, kind, itemID, description string) {
	entry := model.Activity{
		ID:          newID(),
		UserID:      userID,
		Kind:        kind,
		ItemID:      itemID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := b.dbc.WithContext(ctx).Create(&entry).Error; err != nil {
		nlog.Logger().Error().Err(err).
			Str("user", userID).
			Str("kind", kind).
			Msg("failed to log activity")
	}
}

// publishItemEvent 发布条目事件到总线，MQ 未初始化时静默跳过.
func (b *base) publishItemEvent(ctx context.Context, topic string, payload queue.ItemEventPayload) {
	if b.mqc == nil {
		return
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer("drivevault"))
	if err != nil {
		nlog.Logger().Error().Err(err).Str("topic", topic).Msg("failed to build event")
		return
	}

	if err := b.mqc.Publish(ctx, topic, msg); err != nil {
		nlog.Logger().Error().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}

// publishShareEvent 发布共享事件，MQ 未初始化时静默跳过.
func (b *base) publishShareEvent(ctx context.Context, payload queue.ShareEventPayload) {
	if b.mqc == nil {
		return
	}

	if err := queue.PublishShareCreated(b.mqc.Publisher(), payload, queue.WithProducer("drivevault")); err != nil {
		nlog.Logger().Error().Err(err).Msg("failed to publish share event")
	}
}

// invalidateListings 使列表缓存失效，KV 未初始化时跳过.
func (b *base) invalidateListings(ctx context.Context) {
	if b.kvc == nil {
		return
	}

	if err := cache.InvalidateListings(ctx, cache.NewCache(b.kvc)); err != nil {
		nlog.Logger().Warn().Err(err).Msg("failed to invalidate listing cache")
	}
}
