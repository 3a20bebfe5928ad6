package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = data
	return nil
}

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	s := NewSettingsStore(&memItems{})
	assert.Equal(t, config.DefaultSettings(), s.Load())
}

func TestSettingsSaveLoad(t *testing.T) {
	items := &memItems{}
	s := NewSettingsStore(items)

	want := config.Settings{Volume: 80, FrameRateIndex: 2, Fullscreen: true}
	require.NoError(t, s.Save(want))
	assert.Equal(t, want, s.Load())
}

func TestSettingsBadRecordFallsBack(t *testing.T) {
	s := NewSettingsStore(&memItems{data: map[string][]byte{settingsKey: []byte("{nope")}})
	assert.Equal(t, config.DefaultSettings(), s.Load())

	s = NewSettingsStore(&memItems{loadErr: errors.New("disk gone")})
	assert.Equal(t, config.DefaultSettings(), s.Load())

	s = NewSettingsStore(&memItems{data: map[string][]byte{settingsKey: []byte(`{"volume":400}`)}})
	got := s.Load()
	assert.Equal(t, 100, got.Volume)
	assert.Equal(t, config.DefaultSettings().FrameRateIndex, got.FrameRateIndex, "missing fields keep defaults")
}

func TestRecordsOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "records.db")

	r, err := OpenRecords(dbPath)
	require.NoError(t, err)
	defer r.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestRecordsSummaries(t *testing.T) {
	r, err := OpenRecords(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	defer r.Close()

	for _, run := range []struct {
		level, outcome string
		secs           float64
	}{
		{"01-intro", OutcomeDied, 4},
		{"01-intro", OutcomeComplete, 31.5},
		{"01-intro", OutcomeComplete, 27.25},
		{"02-tower", OutcomeDied, 12},
	} {
		_, err := r.Add(run.level, run.outcome, run.secs)
		require.NoError(t, err)
	}

	sums, err := r.Summaries()
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, LevelSummary{Level: "01-intro", Completions: 2, Deaths: 1, BestSeconds: 27.25}, sums[0])
	assert.Equal(t, LevelSummary{Level: "02-tower", Completions: 0, Deaths: 1, BestSeconds: 0}, sums[1])

	recent, err := r.Recent("01-intro", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 27.25, recent[0].Seconds)

	all, err := r.Recent("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLevelSummaryString(t *testing.T) {
	s := LevelSummary{Level: "01-intro", Completions: 2, Deaths: 1, BestSeconds: 27.25}
	assert.Contains(t, s.String(), "best 27.25s")

	never := LevelSummary{Level: "02-tower", Deaths: 3}
	assert.Contains(t, never.String(), "best -")
	assert.Contains(t, never.String(), "died   3")
}
