package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(config.Reset)
	t.Cleanup(func() {
		flagLevels, flagTuning, flagRecords = "", "", ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLevelsCommandListsBuiltins(t *testing.T) {
	out := execute(t, "levels")
	for _, name := range []string{"01_first_steps", "02_crumbling", "03_haunted", "04_tower"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "locked")
}

func TestConvertCommandResolvesGround(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "level.txt")
	require.NoError(t, os.WriteFile(in, []byte("PlayerSpawn: 10,20\nPlatform: 0,groundY,groundLength,false,false\n# note\n"), 0o644))

	out := execute(t, "convert", in)
	assert.Contains(t, out, "Platform: 0,680,1280,false,false")
	assert.Contains(t, out, "# note")
}

func TestRecordsCommandEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "records.db")
	out := execute(t, "records", "--records", db)
	assert.Contains(t, out, "No runs recorded yet")
}

func TestTuningCommandHonoursOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  jump_strength: -11\n"), 0o644))

	out := execute(t, "tuning", "--tuning", path)
	assert.Contains(t, out, "jump_strength: -11")
}
