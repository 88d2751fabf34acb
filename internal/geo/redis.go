package geo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	positionChannelPrefix = "geo:position:"
	lastFixKeyPrefix      = "geo:lastfix:"
)

type messageKind uint8

const (
	kindFix messageKind = iota + 1
	kindError
)

// ErrorReason - причина ошибки позиционирования, которую присылает устройство
type ErrorReason string

const (
	ReasonDenied      ErrorReason = "denied"
	ReasonUnavailable ErrorReason = "unavailable"
)

func (r ErrorReason) err() error {
	if r == ReasonDenied {
		return ErrPermissionDenied
	}
	return ErrPositionUnavailable
}

// positionMessage - формат сообщения в канале позиций
type positionMessage struct {
	Kind      messageKind `msgpack:"k"`
	Latitude  float64     `msgpack:"lat,omitempty"`
	Longitude float64     `msgpack:"lon,omitempty"`
	Accuracy  *float64    `msgpack:"acc,omitempty"`
	Timestamp int64       `msgpack:"ts"`
	Reason    ErrorReason `msgpack:"r,omitempty"`
}

func encodeFix(fix Fix) ([]byte, error) {
	return msgpack.Marshal(positionMessage{
		Kind:      kindFix,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Accuracy:  fix.Accuracy,
		Timestamp: fix.Timestamp.UnixMilli(),
	})
}

func decodeUpdate(payload []byte) (Update, error) {
	var msg positionMessage
	if err := msgpack.Unmarshal(payload, &msg); err != nil {
		return Update{}, fmt.Errorf("failed to decode position message: %w", err)
	}
	switch msg.Kind {
	case kindFix:
		return Update{Fix: Fix{
			Latitude:  msg.Latitude,
			Longitude: msg.Longitude,
			Accuracy:  msg.Accuracy,
			Timestamp: time.UnixMilli(msg.Timestamp),
		}}, nil
	case kindError:
		return Update{Err: msg.Reason.err()}, nil
	}
	return Update{}, fmt.Errorf("unknown position message kind %d", msg.Kind)
}

// RedisProvider публикует позиции устройств в Redis Pub/Sub и выдает подписки на них.
// Последняя отметка кешируется на maxAge, новая подписка сразу получает ее.
type RedisProvider struct {
	client *redis.Client
	maxAge time.Duration
	logger *logrus.Logger
}

// NewRedisProvider создает провайдер позиций поверх Redis
func NewRedisProvider(client *redis.Client, maxAge time.Duration, logger *logrus.Logger) *RedisProvider {
	return &RedisProvider{
		client: client,
		maxAge: maxAge,
		logger: logger,
	}
}

// PublishFix кеширует отметку и рассылает ее подписчикам устройства
func (p *RedisProvider) PublishFix(ctx context.Context, deviceID string, fix Fix) error {
	if fix.Timestamp.IsZero() {
		fix.Timestamp = time.Now()
	}
	payload, err := encodeFix(fix)
	if err != nil {
		return fmt.Errorf("failed to encode position fix: %w", err)
	}

	pipe := p.client.TxPipeline()
	if p.maxAge > 0 {
		pipe.Set(ctx, lastFixKeyPrefix+deviceID, payload, p.maxAge)
	}
	pipe.Publish(ctx, positionChannelPrefix+deviceID, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish position fix: %w", err)
	}
	return nil
}

// PublishError рассылает ошибку позиционирования и сбрасывает кеш отметки
func (p *RedisProvider) PublishError(ctx context.Context, deviceID string, reason ErrorReason) error {
	payload, err := msgpack.Marshal(positionMessage{
		Kind:      kindError,
		Timestamp: time.Now().UnixMilli(),
		Reason:    reason,
	})
	if err != nil {
		return fmt.Errorf("failed to encode position error: %w", err)
	}

	pipe := p.client.TxPipeline()
	pipe.Del(ctx, lastFixKeyPrefix+deviceID)
	pipe.Publish(ctx, positionChannelPrefix+deviceID, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish position error: %w", err)
	}
	return nil
}

// Watch подписывается на канал позиций устройства
func (p *RedisProvider) Watch(ctx context.Context, deviceID string, opts WatchOptions) (Watch, error) {
	sub := p.client.Subscribe(ctx, positionChannelPrefix+deviceID)
	// Дожидаемся подтверждения подписки, чтобы не потерять отметки между кешем и каналом
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe to position channel: %w", err)
	}

	var cached *Fix
	payload, err := p.client.Get(ctx, lastFixKeyPrefix+deviceID).Bytes()
	switch {
	case err == nil:
		if upd, decodeErr := decodeUpdate(payload); decodeErr == nil && upd.Err == nil {
			cached = &upd.Fix
		}
	case !errors.Is(err, redis.Nil):
		p.logger.WithError(err).WithField("device_id", deviceID).Warn("Failed to read cached position fix")
	}

	w := &redisWatch{
		sub:     sub,
		updates: make(chan Update, 1),
		stop:    make(chan struct{}),
		log:     p.logger.WithField("device_id", deviceID),
	}
	go w.pump(ctx, cached, opts.MaximumAge)
	return w, nil
}

type redisWatch struct {
	sub      *redis.PubSub
	updates  chan Update
	stop     chan struct{}
	stopOnce sync.Once
	log      *logrus.Entry
}

func (w *redisWatch) Updates() <-chan Update {
	return w.updates
}

func (w *redisWatch) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.sub.Close()
	})
	return err
}

func (w *redisWatch) pump(ctx context.Context, cached *Fix, maxAge time.Duration) {
	defer close(w.updates)

	if cached != nil && Fresh(*cached, time.Now(), maxAge) {
		if !w.send(ctx, Update{Fix: *cached}) {
			return
		}
	}

	messages := w.sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			upd, err := decodeUpdate([]byte(msg.Payload))
			if err != nil {
				w.log.WithError(err).Warn("Dropping malformed position message")
				continue
			}
			if upd.Err == nil && !Fresh(upd.Fix, time.Now(), maxAge) {
				w.log.WithField("fix_time", upd.Fix.Timestamp).Debug("Dropping stale position fix")
				continue
			}
			if !w.send(ctx, upd) {
				return
			}
		}
	}
}

func (w *redisWatch) send(ctx context.Context, upd Update) bool {
	select {
	case w.updates <- upd:
		return true
	case <-ctx.Done():
		return false
	case <-w.stop:
		return false
	}
}
