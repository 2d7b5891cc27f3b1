package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volunteer_match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/volunteers
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/volunteers", cfg.DatabaseURL)
	assert.Equal(t, 25.0, cfg.Matching.DefaultMaxDistanceMiles)
	assert.Equal(t, 60, cfg.Matching.MinSuggestionScore)
	assert.Equal(t, 10, cfg.Matching.MaxSuggestionsPerEvent)
	assert.Equal(t, 80, cfg.Matching.AutoConfirmScore)

	// No weights configured: the documented defaults apply
	w := cfg.Matching.Weights()
	assert.Equal(t, 0.25, w.Location)
	assert.Equal(t, 0.30, w.Skills)
	require.NoError(t, w.Validate())
}

func TestLoadFromPath_CustomWeights(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/volunteers
matching:
  locationWeight: 0.4
  skillsWeight: 0.3
  availabilityWeight: 0.1
  preferencesWeight: 0.1
  reliabilityWeight: 0.1
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.Matching.Weights().Location)
}

func TestLoadFromPath_RejectsBadWeightSum(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/volunteers
matching:
  locationWeight: 0.9
  skillsWeight: 0.9
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_RequiresDatabaseURL(t *testing.T) {
	path := writeConfig(t, `
matching:
  minSuggestionScore: 50
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidatesSeriesRRule(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/volunteers
eventSeries:
  - name: weekly-kitchen
    templateEventID: e1
    rrule: "NOT-A-RULE"
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidSeries(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/volunteers
eventSeries:
  - name: weekly-kitchen
    templateEventID: e1
    rrule: "FREQ=WEEKLY;BYDAY=MO"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Len(t, cfg.EventSeries, 1)
	assert.Equal(t, "weekly-kitchen", cfg.EventSeries[0].Name)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "databaseURL: [unclosed")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}
