package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/jeevan_setu/internal/webhook"
	"github.com/sirupsen/logrus"
)

// SimulatedBackend рассылает уведомления командному центру и считает этап завершенным
// через заданную задержку. Задержки отсчитываются от Trigger: водители оповещаются через
// precheckDelay, скорая закрепляется через lockDelay.
type SimulatedBackend struct {
	publisher     webhook.Publisher
	precheckDelay time.Duration
	lockDelay     time.Duration
	logger        *logrus.Logger
}

// NewSimulatedBackend создает симулированный бэкенд
func NewSimulatedBackend(publisher webhook.Publisher, precheckDelay, lockDelay time.Duration, logger *logrus.Logger) *SimulatedBackend {
	if lockDelay < precheckDelay {
		lockDelay = precheckDelay
	}
	return &SimulatedBackend{
		publisher:     publisher,
		precheckDelay: precheckDelay,
		lockDelay:     lockDelay,
		logger:        logger,
	}
}

func (b *SimulatedBackend) PingHospitals(ctx context.Context, req Request) error {
	return b.publish(ctx, webhook.EventHospitalPing, req)
}

func (b *SimulatedBackend) AlertDrivers(ctx context.Context, req Request) Result {
	return after(ctx, b.precheckDelay, func(ctx context.Context) error {
		return b.publish(ctx, webhook.EventDriverAlert, req)
	})
}

// LockAmbulance запускается после AlertDrivers, поэтому ждет только остаток lockDelay
func (b *SimulatedBackend) LockAmbulance(ctx context.Context, req Request) Result {
	return after(ctx, b.lockDelay-b.precheckDelay, func(ctx context.Context) error {
		return b.publish(ctx, webhook.EventFamilyNotify, req)
	})
}

func (b *SimulatedBackend) publish(ctx context.Context, eventType webhook.EventType, req Request) error {
	event := webhook.Event{
		Type:       eventType,
		DispatchID: req.DispatchID.String(),
		PatientID:  req.PatientID.String(),
		Hospitals:  req.Hospitals,
		Timestamp:  time.Now().UTC(),
	}
	if req.Location != nil {
		lat, lon := req.Location.Latitude, req.Location.Longitude
		event.Latitude, event.Longitude = &lat, &lon
	}

	if err := b.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	b.logger.WithFields(logrus.Fields{
		"dispatch_id": req.DispatchID,
		"event":       eventType,
	}).Debug("Dispatch event published")
	return nil
}

// after выполняет fn через d. Отмена ctx останавливает таймер и завершает результат ошибкой ctx.
func after(ctx context.Context, d time.Duration, fn func(context.Context) error) Result {
	result := make(chan error, 1)
	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			result <- fn(ctx)
		case <-ctx.Done():
			result <- ctx.Err()
		}
	}()
	return result
}
