package geo

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type fakeWatch struct {
	ch     chan Update
	mu     sync.Mutex
	closed bool
}

func (w *fakeWatch) Updates() <-chan Update { return w.ch }

func (w *fakeWatch) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *fakeWatch) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

type fakeProvider struct {
	err     error
	watches []*fakeWatch
}

func (p *fakeProvider) Watch(context.Context, string, WatchOptions) (Watch, error) {
	if p.err != nil {
		return nil, p.err
	}
	w := &fakeWatch{ch: make(chan Update)}
	p.watches = append(p.watches, w)
	return w, nil
}

func (p *fakeProvider) last() *fakeWatch {
	return p.watches[len(p.watches)-1]
}

var testOpts = WatchOptions{HighAccuracy: true, MaximumAge: 10 * time.Second}

type recorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *recorder) record(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s.Status())
}

func (r *recorder) all() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Status(nil), r.statuses...)
}

func TestTracker_FetchingThenReady(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		provider := &fakeProvider{}
		tracker := NewTracker(provider, "patient-1", testOpts, testLogger())
		rec := &recorder{}
		tracker.OnChange(rec.record)

		assert.Equal(t, StatusIdle, tracker.State().Status())

		tracker.Start(t.Context())
		assert.Equal(t, StatusFetching, tracker.State().Status())

		fix := Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: ptr(12.4), Timestamp: time.Now()}
		provider.last().ch <- Update{Fix: fix}
		synctest.Wait()

		ready, ok := tracker.State().(Ready)
		require.True(t, ok)
		assert.Equal(t, fix, ready.Fix)

		// повторные отметки снова дают Ready
		provider.last().ch <- Update{Fix: Fix{Latitude: 28.62, Longitude: 77.21, Timestamp: time.Now()}}
		synctest.Wait()
		assert.Equal(t, 28.62, tracker.State().(Ready).Fix.Latitude)

		tracker.Stop()
		assert.True(t, provider.last().isClosed())
		assert.Equal(t, StatusIdle, tracker.State().Status())
		assert.Equal(t, []Status{StatusFetching, StatusReady, StatusReady, StatusIdle}, rec.all())
	})
}

func TestTracker_UnsupportedImmediately(t *testing.T) {
	tracker := NewTracker(NoPositioning{}, "patient-1", testOpts, testLogger())
	tracker.Start(context.Background())

	assert.Equal(t, StatusUnsupported, tracker.State().Status())
	tracker.Stop()
}

func TestTracker_SubscribeFailureIsDenied(t *testing.T) {
	provider := &fakeProvider{err: errors.New("redis is down")}
	tracker := NewTracker(provider, "patient-1", testOpts, testLogger())
	tracker.Start(context.Background())

	denied, ok := tracker.State().(Denied)
	require.True(t, ok)
	assert.EqualError(t, denied.Err, "redis is down")
}

func TestTracker_DeniedIsTerminalUntilRestart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		provider := &fakeProvider{}
		tracker := NewTracker(provider, "patient-1", testOpts, testLogger())
		tracker.Start(t.Context())

		first := provider.last()
		first.ch <- Update{Err: ErrPermissionDenied}
		synctest.Wait()

		assert.Equal(t, StatusDenied, tracker.State().Status())
		assert.True(t, first.isClosed(), "watch must be released on error exit")

		// Start на отказавшем трекере ничего не делает
		tracker.Start(t.Context())
		assert.Len(t, provider.watches, 1)
		assert.Equal(t, StatusDenied, tracker.State().Status())

		tracker.Restart(t.Context())
		assert.Len(t, provider.watches, 2)
		assert.Equal(t, StatusFetching, tracker.State().Status())

		tracker.Stop()
	})
}

func TestTracker_ProviderClosedStreamIsUnavailable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		provider := &fakeProvider{}
		tracker := NewTracker(provider, "patient-1", testOpts, testLogger())
		tracker.Start(t.Context())

		provider.last().ch <- Update{Fix: Fix{Latitude: 1, Longitude: 2}}
		synctest.Wait()
		close(provider.last().ch)
		synctest.Wait()

		denied, ok := tracker.State().(Denied)
		require.True(t, ok)
		assert.ErrorIs(t, denied.Err, ErrPositionUnavailable)
		assert.True(t, provider.last().isClosed())

		tracker.Restart(t.Context())
		assert.Len(t, provider.watches, 2)
		assert.Equal(t, StatusFetching, tracker.State().Status())
		tracker.Stop()
	})
}

func TestTracker_ContextCancelReleasesWatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		provider := &fakeProvider{}
		tracker := NewTracker(provider, "patient-1", testOpts, testLogger())

		ctx, cancel := context.WithCancel(t.Context())
		tracker.Start(ctx)
		cancel()
		synctest.Wait()

		assert.True(t, provider.last().isClosed())
		tracker.Stop()
	})
}

func TestTracker_StateIsAlwaysOneVariantProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	// 0 - отметка, 1 - ошибка, 2 - рестарт
	properties.Property("every inspected state is exactly one known variant", prop.ForAll(
		func(events []int) bool {
			valid := true
			synctest.Test(t, func(t *testing.T) {
				provider := &fakeProvider{}
				tracker := NewTracker(provider, "patient-1", testOpts, testLogger())
				tracker.Start(t.Context())
				denied := false

				for _, ev := range events {
					switch ev {
					case 0:
						if !denied {
							provider.last().ch <- Update{Fix: Fix{Latitude: 1, Longitude: 2, Timestamp: time.Now()}}
						}
					case 1:
						if !denied {
							provider.last().ch <- Update{Err: ErrPositionUnavailable}
							denied = true
						}
					case 2:
						tracker.Restart(t.Context())
						denied = false
					}
					synctest.Wait()

					switch tracker.State().(type) {
					case Fetching, Ready:
						valid = valid && !denied
					case Denied:
						valid = valid && denied
					default:
						valid = false
					}
				}
				tracker.Stop()
			})
			return valid
		},
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
