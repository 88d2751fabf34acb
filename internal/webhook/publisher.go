package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// EventType - тип события для командного центра
type EventType string

const (
	EventHospitalPing    EventType = "hospital.ping"
	EventDriverAlert     EventType = "driver.alert"
	EventFamilyNotify    EventType = "family.notify"
	EventBystanderReport EventType = "bystander.report"
)

// ReportPayload - данные сообщения очевидца в событии
type ReportPayload struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Contact     string `json:"contact,omitempty"`
}

// Event - структура для данных вебхука
type Event struct {
	Type       EventType      `json:"type"`
	DispatchID string         `json:"dispatch_id,omitempty"`
	PatientID  string         `json:"patient_id,omitempty"`
	Latitude   *float64       `json:"latitude,omitempty"`
	Longitude  *float64       `json:"longitude,omitempty"`
	Hospitals  []string       `json:"hospitals,omitempty"`
	Report     *ReportPayload `json:"report,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
