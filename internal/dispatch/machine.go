// Package dispatch реализует машину состояний экстренного вызова:
// idle → precheck → dispatching → locked, с таймлайном из четырех строк.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/sirupsen/logrus"
)

// Слоты таймлайна
const (
	SlotSnapshot = iota
	SlotHospitals
	SlotAmbulance
	SlotFamily
)

// DefaultStageTimeout - ожидание одного этапа, если в Config не задано
const DefaultStageTimeout = 30 * time.Second

var (
	// ErrCancelled - консоль закрыта во время диспетчеризации
	ErrCancelled = errors.New("dispatch: cancelled")
	// ErrStageTimeout - этап не завершился за отведенное время
	ErrStageTimeout = errors.New("dispatch: stage timed out")
)

// Request - данные вызова, которые получает бэкенд
type Request struct {
	DispatchID uuid.UUID
	PatientID  uuid.UUID
	Location   *models.Location
	Hospitals  []string
}

// Result - одноразовый результат асинхронного этапа. Канал отдает ровно одно значение.
type Result <-chan error

// Backend выполняет этапы вызова и сообщает об их завершении
type Backend interface {
	// PingHospitals отправляет запрос готовности больницам, синхронно
	PingHospitals(ctx context.Context, req Request) error
	// AlertDrivers завершается, когда водители оповещены
	AlertDrivers(ctx context.Context, req Request) Result
	// LockAmbulance завершается, когда скорая закреплена за вызовом и семья оповещена
	LockAmbulance(ctx context.Context, req Request) Result
}

// Config - настройки машины
type Config struct {
	StageTimeout time.Duration
}

// Snapshot - наблюдаемое состояние машины
type Snapshot struct {
	DispatchID  uuid.UUID
	Phase       models.Phase
	Timeline    []models.TimelineEntry
	AbortReason string
	TriggeredAt *time.Time
}

// Machine - машина состояний одного экстренного вызова.
// Фаза меняется только вперед, строки таймлайна только pending → done.
type Machine struct {
	id      uuid.UUID
	backend Backend
	cfg     Config
	log     *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	phase       models.Phase
	timeline    []models.TimelineEntry
	abortReason string
	triggeredAt *time.Time
	closed      bool
	observers   []func(Snapshot)
}

// NewMachine создает машину в фазе idle с засеянным таймлайном
func NewMachine(id uuid.UUID, backend Backend, cfg Config, logger *logrus.Logger) *Machine {
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = DefaultStageTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Machine{
		id:      id,
		backend: backend,
		cfg:     cfg,
		log: logger.WithFields(logrus.Fields{
			"component":   "dispatch",
			"dispatch_id": id,
		}),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		phase:    models.PhaseIdle,
		timeline: SeedTimeline(time.Now()),
	}
}

// SeedTimeline возвращает начальный таймлайн: снимок профиля уже готов, остальное ожидает
func SeedTimeline(now time.Time) []models.TimelineEntry {
	return []models.TimelineEntry{
		{Label: "Medical snapshot", Detail: "Profile verified & synced", Status: models.EntryDone, Timestamp: &now},
		{Label: "Preferred hospitals", Detail: "Awaiting readiness check", Status: models.EntryPending},
		{Label: "Ambulance lock", Detail: "No active dispatch", Status: models.EntryPending},
		{Label: "Family notified", Detail: "SMS/WhatsApp queued", Status: models.EntryPending},
	}
}

// ButtonLabel - надпись кнопки экстренного вызова для фазы
func ButtonLabel(phase models.Phase) string {
	switch phase {
	case models.PhaseIdle:
		return "Emergency"
	case models.PhasePrecheck:
		return "Checking hospitals"
	case models.PhaseDispatching:
		return "Alerting ambulances"
	case models.PhaseLocked:
		return "Ambulance locked"
	case models.PhaseAborted:
		return "Dispatch failed"
	}
	return ""
}

// ID возвращает идентификатор вызова
func (m *Machine) ID() uuid.UUID {
	return m.id
}

// Observe регистрирует наблюдателя, который получает снимок после каждого перехода.
// Наблюдатели вызываются вне блокировки машины, по порядку переходов.
func (m *Machine) Observe(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Snapshot возвращает копию текущего состояния
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Done закрывается, когда машина достигла терминальной фазы после Trigger или была закрыта
func (m *Machine) Done() <-chan struct{} {
	return m.done
}

// Trigger запускает вызов. Вне фазы idle ничего не делает и возвращает false.
func (m *Machine) Trigger(req Request) (bool, error) {
	m.mu.Lock()
	if m.phase != models.PhaseIdle || m.closed {
		m.mu.Unlock()
		return false, nil
	}
	now := time.Now()
	m.phase = models.PhasePrecheck
	m.triggeredAt = &now
	m.mu.Unlock()

	req.DispatchID = m.id
	m.log.Info("Emergency triggered, pinging preferred hospitals")

	if err := m.backend.PingHospitals(m.ctx, req); err != nil {
		m.abort(fmt.Errorf("ping hospitals: %w", err))
		close(m.done)
		return true, err
	}

	m.complete(models.PhasePrecheck, SlotHospitals, "Hospitals pinged")
	go m.run(req)
	return true, nil
}

// Close отменяет незавершенный вызов, освобождает таймеры и дожидается фоновой горутины
func (m *Machine) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		<-m.done
		return
	}
	m.closed = true
	started := m.phase != models.PhaseIdle
	m.mu.Unlock()

	m.cancel()
	if !started {
		close(m.done)
		return
	}
	<-m.done
}

func (m *Machine) run(req Request) {
	defer close(m.done)

	if err := m.await(m.backend.AlertDrivers(m.ctx, req)); err != nil {
		m.abort(fmt.Errorf("alert drivers: %w", err))
		return
	}
	m.complete(models.PhaseDispatching, SlotAmbulance, "Driver alerted – awaiting accept")

	if err := m.await(m.backend.LockAmbulance(m.ctx, req)); err != nil {
		m.abort(fmt.Errorf("lock ambulance: %w", err))
		return
	}
	m.complete(models.PhaseLocked, SlotFamily, "Family notified with live map")
	m.log.Info("Ambulance locked")
}

func (m *Machine) await(result Result) error {
	timer := time.NewTimer(m.cfg.StageTimeout)
	defer timer.Stop()

	select {
	case err, ok := <-result:
		// бэкенд мог ответить ошибкой ctx раньше, чем сработал ctx.Done
		if m.ctx.Err() != nil {
			return ErrCancelled
		}
		if !ok {
			return errors.New("backend closed result without a value")
		}
		return err
	case <-timer.C:
		return ErrStageTimeout
	case <-m.ctx.Done():
		return ErrCancelled
	}
}

// complete переводит машину в фазу и отмечает слот выполненным
func (m *Machine) complete(phase models.Phase, slot int, detail string) {
	m.mu.Lock()
	if m.phase.Terminal() || phase.Rank() < m.phase.Rank() {
		m.mu.Unlock()
		return
	}
	now := time.Now()
	m.phase = phase
	if m.timeline[slot].Status == models.EntryPending {
		entry := m.timeline[slot]
		entry.Status = models.EntryDone
		entry.Detail = detail
		entry.Timestamp = &now
		m.timeline[slot] = entry
	}
	snap, observers := m.snapshotLocked(), m.observersLocked()
	m.mu.Unlock()

	m.log.WithField("phase", phase).Debug("Dispatch phase advanced")
	notify(observers, snap)
}

func (m *Machine) abort(reason error) {
	m.mu.Lock()
	if m.phase.Terminal() {
		m.mu.Unlock()
		return
	}
	m.phase = models.PhaseAborted
	m.abortReason = reason.Error()
	snap, observers := m.snapshotLocked(), m.observersLocked()
	m.mu.Unlock()

	if errors.Is(reason, ErrCancelled) {
		m.log.Info("Dispatch cancelled")
	} else {
		m.log.WithError(reason).Error("Dispatch aborted")
	}
	notify(observers, snap)
}

func (m *Machine) snapshotLocked() Snapshot {
	timeline := make([]models.TimelineEntry, len(m.timeline))
	copy(timeline, m.timeline)
	return Snapshot{
		DispatchID:  m.id,
		Phase:       m.phase,
		Timeline:    timeline,
		AbortReason: m.abortReason,
		TriggeredAt: m.triggeredAt,
	}
}

func (m *Machine) observersLocked() []func(Snapshot) {
	observers := make([]func(Snapshot), len(m.observers))
	copy(observers, m.observers)
	return observers
}

func notify(observers []func(Snapshot), snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}
