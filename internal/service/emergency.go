package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/config"
	"github.com/shenikar/jeevan_setu/internal/dispatch"
	"github.com/shenikar/jeevan_setu/internal/geo"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=emergency.go -destination=mocks/mock_emergency.go -package=mocks

const (
	persistTimeout = 5 * time.Second
	// вызов проходит не больше четырех фаз после idle
	persistQueueSize = 8
)

// DispatchRepository определяет контракт для работы с бд вызовов
type DispatchRepository interface {
	Upsert(ctx context.Context, d *models.Dispatch) error
	ListByPhase(ctx context.Context, phases []models.Phase, page, pageSize int) ([]*models.Dispatch, error)
	CountTriggeringPatients(ctx context.Context, minutes int) (int, error)
}

// HospitalSource возвращает больницы, которые нужно оповестить о вызове пациента
type HospitalSource interface {
	PatientHospitals(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// PositionProvider - источник позиций устройств, который также принимает отметки от них
type PositionProvider interface {
	geo.Provider
	PublishFix(ctx context.Context, deviceID string, fix geo.Fix) error
	PublishError(ctx context.Context, deviceID string, reason geo.ErrorReason) error
}

// EmergencyService определяет контракт экстренной консоли пациента и дашбордов
type EmergencyService interface {
	OpenConsole(ctx context.Context, userID uuid.UUID, gpsSupported bool) (*models.ConsoleView, error)
	Console(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error)
	Trigger(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error)
	RestartLocation(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error)
	CloseConsole(ctx context.Context, userID uuid.UUID) error
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan models.ConsoleView, func(), error)

	PublishFix(ctx context.Context, userID uuid.UUID, fix geo.Fix) error
	PublishPositionError(ctx context.Context, userID uuid.UUID, reason geo.ErrorReason) error
	WatchOptions() geo.WatchOptions

	ListDispatches(ctx context.Context, phases []models.Phase, page, pageSize int) ([]*models.Dispatch, error)
	Stats(ctx context.Context) (int, error)
	Shutdown()
}

// console - трекер и машина состояний одного пациента
type console struct {
	userID  uuid.UUID
	machine *dispatch.Machine
	tracker *geo.Tracker
	ctx     context.Context
	cancel  context.CancelFunc

	triggerMu sync.Mutex

	// переходы сохраняются по порядку вне горутины машины
	persistQ  chan dispatch.Snapshot
	persisted chan struct{}

	mu     sync.Mutex
	req    dispatch.Request
	subs   map[int]chan models.ConsoleView
	nextID int
	closed bool
}

type emergencyService struct {
	repo      DispatchRepository
	hospitals HospitalSource
	positions PositionProvider
	backend   dispatch.Backend
	cfg       *config.Config
	logger    *logrus.Logger

	rootCtx    context.Context
	rootCancel context.CancelFunc

	mu       sync.Mutex
	consoles map[uuid.UUID]*console
}

func NewEmergencyService(repo DispatchRepository, hospitals HospitalSource, positions PositionProvider, backend dispatch.Backend, cfg *config.Config, logger *logrus.Logger) EmergencyService {
	ctx, cancel := context.WithCancel(context.Background())
	return &emergencyService{
		repo:       repo,
		hospitals:  hospitals,
		positions:  positions,
		backend:    backend,
		cfg:        cfg,
		logger:     logger,
		rootCtx:    ctx,
		rootCancel: cancel,
		consoles:   make(map[uuid.UUID]*console),
	}
}

// OpenConsole создает консоль пациента или возвращает уже открытую
func (s *emergencyService) OpenConsole(ctx context.Context, userID uuid.UUID, gpsSupported bool) (*models.ConsoleView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "emergency",
		"method":        "OpenConsole",
		"user_id":       userID,
		"gps_supported": gpsSupported,
	})

	s.mu.Lock()
	if c, ok := s.consoles[userID]; ok {
		s.mu.Unlock()
		log.Debug("Console already open")
		v := c.view()
		return &v, nil
	}

	var provider geo.Provider = s.positions
	if !gpsSupported {
		provider = geo.NoPositioning{}
	}
	consoleCtx, cancel := context.WithCancel(s.rootCtx)
	c := &console{
		userID: userID,
		machine: dispatch.NewMachine(uuid.New(), s.backend, dispatch.Config{
			StageTimeout: s.cfg.DispatchStageTimeout,
		}, s.logger),
		tracker: geo.NewTracker(provider, userID.String(), s.WatchOptions(), s.logger),
		ctx:       consoleCtx,
		cancel:    cancel,
		persistQ:  make(chan dispatch.Snapshot, persistQueueSize),
		persisted: make(chan struct{}),
		subs:      make(map[int]chan models.ConsoleView),
	}
	c.machine.Observe(func(snap dispatch.Snapshot) {
		if snap.Phase != models.PhaseIdle {
			c.persistQ <- snap
		}
		c.broadcast()
	})
	c.tracker.OnChange(func(geo.State) {
		c.broadcast()
	})
	s.consoles[userID] = c
	s.mu.Unlock()

	go s.persistLoop(c)
	c.tracker.Start(consoleCtx)
	log.WithField("dispatch_id", c.machine.ID()).Info("Emergency console opened")

	v := c.view()
	return &v, nil
}

// Console возвращает текущее состояние консоли
func (s *emergencyService) Console(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error) {
	c, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	v := c.view()
	return &v, nil
}

// Trigger запускает вызов с текущей позицией и больницами пациента.
// Если вызов уже запущен, консоль не меняется.
func (s *emergencyService) Trigger(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "Trigger",
		"user_id": userID,
	})

	c, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	c.triggerMu.Lock()
	defer c.triggerMu.Unlock()

	if phase := c.machine.Snapshot().Phase; phase != models.PhaseIdle {
		log.WithField("phase", phase).Info("Trigger ignored, dispatch already started")
		v := c.view()
		return &v, nil
	}

	hospitals, err := s.hospitals.PatientHospitals(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get patient hospitals, using defaults")
		hospitals = models.DefaultProfileDraft().AllHospitals()
	}

	req := dispatch.Request{
		PatientID: userID,
		Location:  locationOf(c.tracker.State()),
		Hospitals: hospitals,
	}
	c.mu.Lock()
	c.req = req
	c.mu.Unlock()

	log = log.WithField("dispatch_id", c.machine.ID())
	log.Info("Triggering emergency dispatch")

	if _, err := c.machine.Trigger(req); err != nil {
		log.WithError(err).Error("Emergency dispatch aborted")
		v := c.view()
		return &v, fmt.Errorf("service: dispatch aborted: %w", err)
	}

	v := c.view()
	return &v, nil
}

// RestartLocation переоформляет подписку на позицию
func (s *emergencyService) RestartLocation(ctx context.Context, userID uuid.UUID) (*models.ConsoleView, error) {
	c, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "RestartLocation",
		"user_id": userID,
	}).Info("Restarting location tracking")

	c.tracker.Restart(c.ctx)
	v := c.view()
	return &v, nil
}

// CloseConsole отменяет незавершенный вызов и освобождает подписку на позицию
func (s *emergencyService) CloseConsole(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	c, ok := s.consoles[userID]
	delete(s.consoles, userID)
	s.mu.Unlock()
	if !ok {
		return ErrConsoleNotFound
	}

	c.close()
	s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "CloseConsole",
		"user_id": userID,
	}).Info("Emergency console closed")
	return nil
}

// Subscribe возвращает поток состояний консоли. Первое значение - текущее состояние.
// Поток закрывается при закрытии консоли или вызове отписки.
func (s *emergencyService) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan models.ConsoleView, func(), error) {
	c, err := s.get(userID)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil, ErrConsoleNotFound
	}

	ch := make(chan models.ConsoleView, 1)
	ch <- c.view()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch

	unsubscribe := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ch, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
	return ch, unsubscribe, nil
}

// PublishFix принимает отметку позиции от устройства пациента
func (s *emergencyService) PublishFix(ctx context.Context, userID uuid.UUID, fix geo.Fix) error {
	if err := s.positions.PublishFix(ctx, userID.String(), fix); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to publish position fix")
		return fmt.Errorf("service: could not publish position fix: %w", err)
	}
	return nil
}

// PublishPositionError принимает ошибку позиционирования от устройства пациента
func (s *emergencyService) PublishPositionError(ctx context.Context, userID uuid.UUID, reason geo.ErrorReason) error {
	if reason != geo.ReasonDenied && reason != geo.ReasonUnavailable {
		return fmt.Errorf("%w: %q", ErrInvalidPositionReason, reason)
	}
	if err := s.positions.PublishError(ctx, userID.String(), reason); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to publish position error")
		return fmt.Errorf("service: could not publish position error: %w", err)
	}
	return nil
}

// WatchOptions - параметры подписки на позицию для устройств
func (s *emergencyService) WatchOptions() geo.WatchOptions {
	return geo.WatchOptions{
		HighAccuracy: s.cfg.LocationHighAccuracy,
		MaximumAge:   s.cfg.LocationMaxAge,
	}
}

// ListDispatches возвращает вызовы в заданных фазах с пагинацией
func (s *emergencyService) ListDispatches(ctx context.Context, phases []models.Phase, page, pageSize int) ([]*models.Dispatch, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "emergency",
		"method":    "ListDispatches",
		"phases":    phases,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing dispatches")

	dispatches, err := s.repo.ListByPhase(ctx, phases, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from repository")
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}

	log.WithField("count", len(dispatches)).Info("Dispatches listed successfully")
	return dispatches, nil
}

// Stats возвращает число пациентов, вызывавших помощь за окно статистики
func (s *emergencyService) Stats(ctx context.Context) (int, error) {
	count, err := s.repo.CountTriggeringPatients(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dispatch stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// Shutdown закрывает все консоли
func (s *emergencyService) Shutdown() {
	s.mu.Lock()
	consoles := s.consoles
	s.consoles = make(map[uuid.UUID]*console)
	s.mu.Unlock()

	for _, c := range consoles {
		c.close()
	}
	s.rootCancel()
	s.logger.WithField("consoles", len(consoles)).Info("Emergency consoles shut down")
}

func (s *emergencyService) get(userID uuid.UUID) (*console, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.consoles[userID]
	if !ok {
		return nil, ErrConsoleNotFound
	}
	return c, nil
}

// persistLoop сохраняет переходы вызова, пока консоль не закрыта
func (s *emergencyService) persistLoop(c *console) {
	defer close(c.persisted)
	for snap := range c.persistQ {
		s.persist(c, snap)
	}
}

// persist сохраняет переход вызова
func (s *emergencyService) persist(c *console, snap dispatch.Snapshot) {
	c.mu.Lock()
	req := c.req
	c.mu.Unlock()

	now := time.Now().UTC()
	d := &models.Dispatch{
		ID:          snap.DispatchID,
		PatientID:   c.userID,
		Phase:       snap.Phase,
		Timeline:    snap.Timeline,
		Location:    req.Location,
		Hospitals:   req.Hospitals,
		AbortReason: snap.AbortReason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if snap.TriggeredAt != nil {
		d.CreatedAt = snap.TriggeredAt.UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.Upsert(ctx, d); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"dispatch_id": d.ID,
			"phase":       d.Phase,
		}).Error("Failed to persist dispatch transition")
	}
}

func (c *console) view() models.ConsoleView {
	snap := c.machine.Snapshot()
	return models.ConsoleView{
		DispatchID:  snap.DispatchID,
		Phase:       snap.Phase,
		ButtonLabel: dispatch.ButtonLabel(snap.Phase),
		Timeline:    snap.Timeline,
		AbortReason: snap.AbortReason,
		TriggeredAt: snap.TriggeredAt,
		Location:    locationView(c.tracker.State()),
	}
}

// broadcast рассылает состояние подписчикам. Медленный подписчик получает только последнее.
func (c *console) broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || len(c.subs) == 0 {
		return
	}
	v := c.view()
	for _, ch := range c.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// close отменяет вызов и закрывает подписчиков до остановки трекера,
// последним подписчик видит итоговое состояние вызова, а не сброс позиции
func (c *console) close() {
	c.machine.Close()
	close(c.persistQ)

	c.mu.Lock()
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
	c.mu.Unlock()

	c.tracker.Stop()
	c.cancel()
	<-c.persisted
}

func locationView(state geo.State) models.LocationView {
	v := models.LocationView{
		Status:  string(state.Status()),
		Summary: geo.Summary(state),
		Tone:    geo.Tone(state),
	}
	if ready, ok := state.(geo.Ready); ok {
		lat, lon := ready.Fix.Latitude, ready.Fix.Longitude
		v.Latitude, v.Longitude = &lat, &lon
		v.AccuracyMeters = ready.Fix.Accuracy
	}
	return v
}

// locationOf возвращает координаты для вызова, если позиция известна
func locationOf(state geo.State) *models.Location {
	ready, ok := state.(geo.Ready)
	if !ok {
		return nil
	}
	return &models.Location{
		Latitude:       ready.Fix.Latitude,
		Longitude:      ready.Fix.Longitude,
		AccuracyMeters: ready.Fix.Accuracy,
	}
}
