package geo

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Tracker держит подписку на позицию одного устройства и текущее состояние.
// Отказ или ошибка позиционирования терминальны до явного Restart.
type Tracker struct {
	provider Provider
	deviceID string
	opts     WatchOptions
	log      *logrus.Entry

	mu        sync.Mutex
	state     State
	gen       uint64
	cancel    context.CancelFunc
	done      chan struct{}
	listeners []func(State)
}

// NewTracker создает трекер в состоянии Idle
func NewTracker(provider Provider, deviceID string, opts WatchOptions, logger *logrus.Logger) *Tracker {
	return &Tracker{
		provider: provider,
		deviceID: deviceID,
		opts:     opts,
		log: logger.WithFields(logrus.Fields{
			"component": "geo_tracker",
			"device_id": deviceID,
		}),
		state: Idle{},
	}
}

// Options возвращает параметры подписки
func (t *Tracker) Options() WatchOptions {
	return t.opts
}

// State возвращает текущее состояние
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// OnChange регистрирует обработчик смены состояния.
// Обработчик вызывается вне блокировки трекера.
func (t *Tracker) OnChange(fn func(State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Start оформляет подписку. Повторный вызов на активном трекере ничего не делает.
// ctx ограничивает время жизни подписки.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.done != nil {
		t.mu.Unlock()
		return
	}
	t.gen++
	gen := t.gen
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel, t.done = cancel, done
	t.mu.Unlock()

	watch, err := t.provider.Watch(watchCtx, t.deviceID, t.opts)
	if err != nil {
		close(done)
		if errors.Is(err, ErrUnsupported) {
			t.log.Info("Device has no positioning capability")
			t.transition(gen, Unsupported{})
			return
		}
		t.log.WithError(err).Warn("Failed to subscribe to device position")
		t.transition(gen, Denied{Err: err})
		return
	}

	t.transition(gen, Fetching{})
	go t.run(watchCtx, gen, watch, done)
}

// Stop освобождает подписку, дожидается завершения и возвращает трекер в Idle
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	t.transition(gen, Idle{})
}

// Restart - Stop и затем Start со свежей подпиской
func (t *Tracker) Restart(ctx context.Context) {
	t.Stop()
	t.Start(ctx)
}

func (t *Tracker) run(ctx context.Context, gen uint64, watch Watch, done chan struct{}) {
	defer close(done)
	defer func() {
		if err := watch.Close(); err != nil {
			t.log.WithError(err).Warn("Failed to release position watch")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-watch.Updates():
			if !ok {
				if ctx.Err() != nil {
					return
				}
				// без потока позиция не обновится до Restart
				t.log.Warn("Position stream closed by provider")
				t.transition(gen, Denied{Err: ErrPositionUnavailable})
				return
			}
			if upd.Err != nil {
				t.log.WithError(upd.Err).Info("Positioning denied or failed")
				t.transition(gen, Denied{Err: upd.Err})
				return
			}
			t.transition(gen, Ready{Fix: upd.Fix})
		}
	}
}

// transition применяет состояние, если оно относится к текущему поколению подписки
func (t *Tracker) transition(gen uint64, s State) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.state = s
	listeners := make([]func(State), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
