package catalog

import (
	"strings"
	"testing"

	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Road accident", "Cardiac", "Stroke", "Breathing", "Burn", "Other"}, c.IncidentTags)
	assert.True(t, c.HasTag(models.DefaultIncidentTag))
	assert.False(t, c.HasTag("cardiac"))
	assert.Len(t, c.RejectionPolicies, 3)

	require.Len(t, c.NearbyAmbulances, 3)
	assert.Equal(t, Ambulance{Unit: "ALS-21", ETAMinutes: 4}, c.NearbyAmbulances[0])
	assert.Equal(t, Ambulance{Unit: "Gov-12", ETAMinutes: 6}, c.NearbyAmbulances[2])

	assert.Contains(t, c.HospitalOptions, "Pulse Children Hospital")
	for _, h := range models.DefaultProfileDraft().PreferredHospitals {
		assert.Contains(t, c.HospitalOptions, h)
	}

	require.Len(t, c.Vitals, 3)
	assert.Equal(t, Vital{Label: "SpO2", Value: "97%", Status: "stable"}, c.Vitals[2])
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader("incident_tags: [Flood]\nhospital_options: [A, B]\n"))
	require.NoError(t, err)
	assert.True(t, c.HasTag("Flood"))
	assert.Equal(t, []string{"A", "B"}, c.HospitalOptions)

	_, err = Load(strings.NewReader("hospital_options: [A]\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("incident_tags: [unclosed\n"))
	assert.Error(t, err)
}
