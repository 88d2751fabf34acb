package geo

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnsupported - у устройства нет геопозиционирования
	ErrUnsupported = errors.New("geo: positioning is not supported by the device")
	// ErrPermissionDenied - пользователь отклонил запрос доступа к позиции
	ErrPermissionDenied = errors.New("geo: permission denied")
	// ErrPositionUnavailable - платформа не смогла определить позицию
	ErrPositionUnavailable = errors.New("geo: position unavailable")
)

// WatchOptions - параметры подписки, которые передаются устройству
type WatchOptions struct {
	HighAccuracy bool          `json:"high_accuracy"`
	MaximumAge   time.Duration `json:"maximum_age"`
}

// Update - событие подписки: либо отметка, либо ошибка позиционирования
type Update struct {
	Fix Fix
	Err error
}

// Watch - активная подписка на позицию. Close освобождает ее и закрывает Updates.
type Watch interface {
	Updates() <-chan Update
	Close() error
}

// Provider выдает непрерывный поток позиций устройства.
// Если позиционирования нет, Watch возвращает ErrUnsupported.
type Provider interface {
	Watch(ctx context.Context, deviceID string, opts WatchOptions) (Watch, error)
}

// NoPositioning - провайдер для устройств без GPS
type NoPositioning struct{}

func (NoPositioning) Watch(context.Context, string, WatchOptions) (Watch, error) {
	return nil, ErrUnsupported
}

// Fresh сообщает, можно ли еще использовать отметку при заданном максимальном возрасте.
// Нулевой maxAge не ограничивает возраст.
func Fresh(fix Fix, now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 || fix.Timestamp.IsZero() {
		return true
	}
	return now.Sub(fix.Timestamp) <= maxAge
}
