package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jetjson/profile"
)

func TestProfilerDisabled(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig().NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}

func TestProfilerWritesSnapshots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.HeapProfile = filepath.Join(dir, "heap.prof")
	cfg.AllocsProfile = filepath.Join(dir, "allocs.prof")
	cfg.GoroutineProfile = filepath.Join(dir, "goroutine.prof")
	cfg.ThreadcreateProfile = filepath.Join(dir, "threadcreate.prof")
	cfg.BlockProfile = filepath.Join(dir, "block.prof")
	cfg.MutexProfile = filepath.Join(dir, "mutex.prof")
	cfg.BlockProfileRate = 1
	cfg.MutexProfileFraction = 1

	p := cfg.NewProfiler()

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	paths := []string{
		cfg.HeapProfile,
		cfg.AllocsProfile,
		cfg.GoroutineProfile,
		cfg.ThreadcreateProfile,
		cfg.BlockProfile,
		cfg.MutexProfile,
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestProfilerCPUProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.prof")

	p := cfg.NewProfiler()

	require.NoError(t, p.Start())

	// Burn a little CPU so the profile has samples to record.
	x := 0
	for i := range 1_000_000 {
		x += i
	}

	_ = x

	require.NoError(t, p.Stop())

	info, err := os.Stat(cfg.CPUProfile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cmd := &cobra.Command{Use: "test"}

	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	require.NoError(t, cmd.Flags().Set("cpu-profile", "out.prof"))
	require.NoError(t, cmd.Flags().Set("block-profile", "block.prof"))
	require.NoError(t, cmd.Flags().Set("mutex-profile", "mutex.prof"))
	require.NoError(t, cmd.Flags().Set("mem-profile-rate", "1024"))
	require.NoError(t, cmd.Flags().Set("block-profile-rate", "2"))
	require.NoError(t, cmd.Flags().Set("mutex-profile-fraction", "4"))

	assert.Equal(t, "out.prof", cfg.CPUProfile)
	assert.Equal(t, "block.prof", cfg.BlockProfile)
	assert.Equal(t, "mutex.prof", cfg.MutexProfile)
	assert.Equal(t, 1024, cfg.MemProfileRate)
	assert.Equal(t, 2, cfg.BlockProfileRate)
	assert.Equal(t, 4, cfg.MutexProfileFraction)
}
