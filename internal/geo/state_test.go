package geo

import (
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestSummary(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"idle", Idle{}, "Fetching live location..."},
		{"fetching", Fetching{}, "Fetching live location..."},
		{"unsupported", Unsupported{}, "Device has no GPS"},
		{"denied", Denied{Err: ErrPermissionDenied}, "Location blocked – tap to enter manually"},
		{"ready", Ready{Fix: Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: ptr(12.4)}}, "28.6139, 77.2090 (12m)"},
		{"ready without accuracy", Ready{Fix: Fix{Latitude: 28.6139, Longitude: 77.2090}}, "28.6139, 77.2090 (10m)"},
		{"ready rounds half up", Ready{Fix: Fix{Latitude: -33.8688, Longitude: 151.2093, Accuracy: ptr(4.5)}}, "-33.8688, 151.2093 (5m)"},
		{"nil state", nil, "Live location pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.state))
		})
	}
}

func TestTone(t *testing.T) {
	assert.Equal(t, "ok", Tone(Ready{}))
	assert.Equal(t, "warn", Tone(Denied{}))
	assert.Equal(t, "pending", Tone(Fetching{}))
	assert.Equal(t, "pending", Tone(Unsupported{}))
	assert.Equal(t, "pending", Tone(Idle{}))
}

func TestSummary_ReadyFormatProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	format := regexp.MustCompile(`^-?\d+\.\d{4}, -?\d+\.\d{4} \((\d+)m\)$`)

	properties.Property("ready summary has 4dp coordinates and rounded accuracy", prop.ForAll(
		func(lat, lon, accuracy float64) bool {
			summary := Summary(Ready{Fix: Fix{Latitude: lat, Longitude: lon, Accuracy: &accuracy}})
			m := format.FindStringSubmatch(summary)
			if m == nil {
				return false
			}
			return m[1] == fmt.Sprintf("%d", int64(math.Round(accuracy)))
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
		gen.Float64Range(0, 5000),
	))

	properties.TestingRun(t)
}
