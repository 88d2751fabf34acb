package dispatch

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/webhook"
	webhook_mocks "github.com/shenikar/jeevan_setu/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	precheckDelay = 1200 * time.Millisecond
	lockDelay     = 2800 * time.Millisecond
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// phaseRecorder собирает снимки, которые получает наблюдатель
type phaseRecorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *phaseRecorder) observe(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *phaseRecorder) phases() []models.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	phases := make([]models.Phase, len(r.snaps))
	for i, s := range r.snaps {
		phases[i] = s.Phase
	}
	return phases
}

func (r *phaseRecorder) snapshots() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Snapshot(nil), r.snaps...)
}

func newSimulatedMachine(t *testing.T) (*Machine, *webhook_mocks.MockPublisher, *phaseRecorder) {
	ctrl := gomock.NewController(t)
	publisher := webhook_mocks.NewMockPublisher(ctrl)
	backend := NewSimulatedBackend(publisher, precheckDelay, lockDelay, testLogger())
	m := NewMachine(uuid.New(), backend, Config{StageTimeout: 30 * time.Second}, testLogger())
	rec := &phaseRecorder{}
	m.Observe(rec.observe)
	return m, publisher, rec
}

func eventOfType(eventType webhook.EventType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		ev, ok := x.(webhook.Event)
		return ok && ev.Type == eventType
	})
}

func TestMachine_SeedTimeline(t *testing.T) {
	m := NewMachine(uuid.New(), nil, Config{}, testLogger())
	defer m.Close()

	snap := m.Snapshot()
	assert.Equal(t, models.PhaseIdle, snap.Phase)
	require.Len(t, snap.Timeline, 4)
	assert.Equal(t, "Medical snapshot", snap.Timeline[SlotSnapshot].Label)
	assert.Equal(t, models.EntryDone, snap.Timeline[SlotSnapshot].Status)
	assert.NotNil(t, snap.Timeline[SlotSnapshot].Timestamp)
	for _, slot := range []int{SlotHospitals, SlotAmbulance, SlotFamily} {
		assert.Equal(t, models.EntryPending, snap.Timeline[slot].Status)
		assert.Nil(t, snap.Timeline[slot].Timestamp)
	}
	assert.Nil(t, snap.TriggeredAt)
}

func TestMachine_FullSequence(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		patientID := uuid.New()
		location := &models.Location{Latitude: 28.6139, Longitude: 77.2090}

		gomock.InOrder(
			publisher.EXPECT().Publish(gomock.Any(), gomock.Cond(func(x any) bool {
				ev := x.(webhook.Event)
				return ev.Type == webhook.EventHospitalPing &&
					ev.DispatchID == m.ID().String() &&
					ev.PatientID == patientID.String() &&
					*ev.Latitude == 28.6139 &&
					len(ev.Hospitals) == 2
			})).Return(nil),
			publisher.EXPECT().Publish(gomock.Any(), eventOfType(webhook.EventDriverAlert)).Return(nil),
			publisher.EXPECT().Publish(gomock.Any(), eventOfType(webhook.EventFamilyNotify)).Return(nil),
		)

		start := time.Now()
		triggered, err := m.Trigger(Request{
			PatientID: patientID,
			Location:  location,
			Hospitals: []string{"City Heart Institute", "MetroCare Cardiac"},
		})
		require.NoError(t, err)
		require.True(t, triggered)

		snap := m.Snapshot()
		assert.Equal(t, models.PhasePrecheck, snap.Phase)
		assert.Equal(t, models.EntryDone, snap.Timeline[SlotHospitals].Status)
		assert.Equal(t, "Hospitals pinged", snap.Timeline[SlotHospitals].Detail)
		assert.WithinDuration(t, start, *snap.Timeline[SlotHospitals].Timestamp, 0)

		time.Sleep(precheckDelay - time.Millisecond)
		synctest.Wait()
		assert.Equal(t, models.PhasePrecheck, m.Snapshot().Phase)

		time.Sleep(time.Millisecond)
		synctest.Wait()
		snap = m.Snapshot()
		assert.Equal(t, models.PhaseDispatching, snap.Phase)
		assert.Equal(t, "Driver alerted – awaiting accept", snap.Timeline[SlotAmbulance].Detail)
		assert.WithinDuration(t, start.Add(precheckDelay), *snap.Timeline[SlotAmbulance].Timestamp, 0)

		time.Sleep(lockDelay - precheckDelay)
		synctest.Wait()
		snap = m.Snapshot()
		assert.Equal(t, models.PhaseLocked, snap.Phase)
		assert.Equal(t, "Family notified with live map", snap.Timeline[SlotFamily].Detail)
		assert.WithinDuration(t, start.Add(lockDelay), *snap.Timeline[SlotFamily].Timestamp, 0)

		<-m.Done()
		assert.Equal(t, []models.Phase{models.PhasePrecheck, models.PhaseDispatching, models.PhaseLocked}, rec.phases())
		m.Close()
	})
}

func TestMachine_TriggerIsNoopWhenNotIdle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		triggered, err := m.Trigger(Request{PatientID: uuid.New()})
		require.NoError(t, err)
		require.True(t, triggered)
		before := m.Snapshot()

		triggered, err = m.Trigger(Request{PatientID: uuid.New()})
		require.NoError(t, err)
		assert.False(t, triggered)
		assert.Equal(t, before, m.Snapshot())

		<-m.Done()
		triggered, _ = m.Trigger(Request{})
		assert.False(t, triggered)
		assert.Equal(t, models.PhaseLocked, m.Snapshot().Phase)
		assert.Len(t, rec.phases(), 3)
		m.Close()
	})
}

func TestMachine_TimelineIsMonotonic(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		_, err := m.Trigger(Request{PatientID: uuid.New()})
		require.NoError(t, err)
		<-m.Done()

		prev := SeedTimeline(time.Now())
		prevRank := models.PhaseIdle.Rank()
		for _, snap := range rec.snapshots() {
			assert.Greater(t, snap.Phase.Rank(), prevRank, "phase must strictly advance")
			prevRank = snap.Phase.Rank()
			for i, entry := range snap.Timeline {
				assert.Equal(t, prev[i].Label, entry.Label, "slots never reorder")
				if prev[i].Status == models.EntryDone {
					assert.Equal(t, models.EntryDone, entry.Status, "slot %d regressed", i)
				}
			}
			prev = snap.Timeline
		}
		m.Close()
	})
}

func TestMachine_PingFailureAborts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis unavailable")).Times(1)

		triggered, err := m.Trigger(Request{PatientID: uuid.New()})
		assert.True(t, triggered)
		require.Error(t, err)

		snap := m.Snapshot()
		assert.Equal(t, models.PhaseAborted, snap.Phase)
		assert.Contains(t, snap.AbortReason, "ping hospitals")
		assert.Equal(t, models.EntryPending, snap.Timeline[SlotHospitals].Status)
		assert.Equal(t, []models.Phase{models.PhaseAborted}, rec.phases())
		m.Close()
	})
}

func TestMachine_StageFailureAbortsAndKeepsPendingSlots(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		gomock.InOrder(
			publisher.EXPECT().Publish(gomock.Any(), eventOfType(webhook.EventHospitalPing)).Return(nil),
			publisher.EXPECT().Publish(gomock.Any(), eventOfType(webhook.EventDriverAlert)).Return(errors.New("queue full")),
		)

		_, err := m.Trigger(Request{PatientID: uuid.New()})
		require.NoError(t, err)
		<-m.Done()

		snap := m.Snapshot()
		assert.Equal(t, models.PhaseAborted, snap.Phase)
		assert.Contains(t, snap.AbortReason, "alert drivers")
		assert.Contains(t, snap.AbortReason, "queue full")
		assert.Equal(t, models.EntryDone, snap.Timeline[SlotHospitals].Status)
		assert.Equal(t, models.EntryPending, snap.Timeline[SlotAmbulance].Status)
		assert.Equal(t, models.EntryPending, snap.Timeline[SlotFamily].Status)
		assert.Equal(t, []models.Phase{models.PhasePrecheck, models.PhaseAborted}, rec.phases())
		m.Close()
	})
}

// stubBackend позволяет управлять результатами этапов вручную
type stubBackend struct {
	alert chan error
	lock  chan error
}

func (b *stubBackend) PingHospitals(context.Context, Request) error { return nil }
func (b *stubBackend) AlertDrivers(context.Context, Request) Result { return b.alert }
func (b *stubBackend) LockAmbulance(context.Context, Request) Result { return b.lock }

func TestMachine_StageTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		backend := &stubBackend{alert: make(chan error), lock: make(chan error)}
		m := NewMachine(uuid.New(), backend, Config{StageTimeout: 5 * time.Second}, testLogger())

		_, err := m.Trigger(Request{})
		require.NoError(t, err)

		time.Sleep(5*time.Second - time.Millisecond)
		synctest.Wait()
		assert.Equal(t, models.PhasePrecheck, m.Snapshot().Phase)

		time.Sleep(time.Millisecond)
		synctest.Wait()
		snap := m.Snapshot()
		assert.Equal(t, models.PhaseAborted, snap.Phase)
		assert.Contains(t, snap.AbortReason, ErrStageTimeout.Error())
		m.Close()
	})
}

func TestMachine_CompletionSignalsDriveTransitions(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		backend := &stubBackend{alert: make(chan error, 1), lock: make(chan error, 1)}
		m := NewMachine(uuid.New(), backend, Config{}, testLogger())

		_, err := m.Trigger(Request{})
		require.NoError(t, err)

		// без сигнала машина не двигается, сколько бы времени ни прошло
		time.Sleep(10 * time.Second)
		synctest.Wait()
		assert.Equal(t, models.PhasePrecheck, m.Snapshot().Phase)

		backend.alert <- nil
		synctest.Wait()
		assert.Equal(t, models.PhaseDispatching, m.Snapshot().Phase)

		backend.lock <- nil
		<-m.Done()
		assert.Equal(t, models.PhaseLocked, m.Snapshot().Phase)
		m.Close()
	})
}

func TestMachine_CloseCancelsTimers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, publisher, rec := newSimulatedMachine(t)
		publisher.EXPECT().Publish(gomock.Any(), eventOfType(webhook.EventHospitalPing)).Return(nil).Times(1)

		_, err := m.Trigger(Request{PatientID: uuid.New()})
		require.NoError(t, err)

		time.Sleep(precheckDelay / 2)
		m.Close()

		snap := m.Snapshot()
		assert.Equal(t, models.PhaseAborted, snap.Phase)
		assert.Contains(t, snap.AbortReason, ErrCancelled.Error())
		assert.Equal(t, []models.Phase{models.PhasePrecheck, models.PhaseAborted}, rec.phases())

		// после закрытия таймеры не срабатывают и новых публикаций нет
		time.Sleep(lockDelay)
		synctest.Wait()
		assert.Equal(t, models.PhaseAborted, m.Snapshot().Phase)

		triggered, _ := m.Trigger(Request{})
		assert.False(t, triggered)
	})
}

func TestMachine_CloseIdle(t *testing.T) {
	m := NewMachine(uuid.New(), &stubBackend{}, Config{}, testLogger())
	m.Close()
	m.Close()

	triggered, err := m.Trigger(Request{})
	require.NoError(t, err)
	assert.False(t, triggered)
	assert.Equal(t, models.PhaseIdle, m.Snapshot().Phase)

	select {
	case <-m.Done():
	default:
		t.Fatal("Done must be closed after Close")
	}
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "Emergency", ButtonLabel(models.PhaseIdle))
	assert.Equal(t, "Checking hospitals", ButtonLabel(models.PhasePrecheck))
	assert.Equal(t, "Alerting ambulances", ButtonLabel(models.PhaseDispatching))
	assert.Equal(t, "Ambulance locked", ButtonLabel(models.PhaseLocked))
	assert.Equal(t, "Dispatch failed", ButtonLabel(models.PhaseAborted))
}
