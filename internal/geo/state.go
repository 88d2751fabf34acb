// Package geo отслеживает геопозицию устройства пациента и сводит поток
// координат к одному из состояний LocationState.
package geo

import (
	"fmt"
	"math"
	"time"
)

// FallbackAccuracyMeters используется в сводке, если устройство не сообщило точность
const FallbackAccuracyMeters = 10.0

// Status - имя варианта состояния
type Status string

const (
	StatusIdle        Status = "idle"
	StatusUnsupported Status = "unsupported"
	StatusDenied      Status = "denied"
	StatusFetching    Status = "fetching"
	StatusReady       Status = "ready"
)

// Fix - одна отметка позиции от устройства
type Fix struct {
	Latitude  float64
	Longitude float64
	// Accuracy в метрах, nil если устройство ее не передало
	Accuracy  *float64
	Timestamp time.Time
}

// State - состояние трекера. Реализуется только типами этого пакета.
type State interface {
	Status() Status
	isState()
}

// Idle - запрос позиции еще не выполнялся
type Idle struct{}

// Unsupported - у устройства нет геопозиционирования
type Unsupported struct{}

// Denied - пользователь запретил доступ или платформа вернула ошибку
type Denied struct {
	Err error
}

// Fetching - подписка оформлена, первой отметки еще нет
type Fetching struct{}

// Ready - последняя известная позиция
type Ready struct {
	Fix Fix
}

func (Idle) Status() Status        { return StatusIdle }
func (Unsupported) Status() Status { return StatusUnsupported }
func (Denied) Status() Status      { return StatusDenied }
func (Fetching) Status() Status    { return StatusFetching }
func (Ready) Status() Status       { return StatusReady }

func (Idle) isState()        {}
func (Unsupported) isState() {}
func (Denied) isState()      {}
func (Fetching) isState()    {}
func (Ready) isState()       {}

// Summary возвращает строку для плитки "Location"
func Summary(state State) string {
	switch s := state.(type) {
	case Unsupported:
		return "Device has no GPS"
	case Denied:
		return "Location blocked – tap to enter manually"
	case Fetching, Idle:
		return "Fetching live location..."
	case Ready:
		accuracy := FallbackAccuracyMeters
		if s.Fix.Accuracy != nil {
			accuracy = *s.Fix.Accuracy
		}
		return fmt.Sprintf("%.4f, %.4f (%dm)", s.Fix.Latitude, s.Fix.Longitude, int64(math.Round(accuracy)))
	}
	return "Live location pending"
}

// Tone - оттенок плитки: ok, warn или pending
func Tone(state State) string {
	switch state.(type) {
	case Ready:
		return "ok"
	case Denied:
		return "warn"
	}
	return "pending"
}
