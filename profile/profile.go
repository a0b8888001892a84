package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of a profiling session.
//
// [Profiler.Start] configures sampling rates and begins CPU profiling when
// enabled; [Profiler.Stop] ends the CPU profile and writes the snapshot
// profiles. Create instances with [Config.NewProfiler].
type Profiler struct {
	Config

	cpuFile *os.File
}

// Start configures sampling rates and starts CPU profiling if a CPU profile
// path is set.
func (p *Profiler) Start() error {
	if p.MemProfileRate > 0 {
		runtime.MemProfileRate = p.MemProfileRate
	}

	runtime.SetBlockProfileRate(p.BlockProfileRate)
	runtime.SetMutexProfileFraction(p.MutexProfileFraction)

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return nil
}

// Stop ends CPU profiling and writes all enabled snapshot profiles.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		if err := p.cpuFile.Close(); err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		p.cpuFile = nil
	}

	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
		{"goroutine", p.GoroutineProfile},
		{"threadcreate", p.ThreadcreateProfile},
		{"block", p.BlockProfile},
		{"mutex", p.MutexProfile},
	}

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		if err := writeSnapshot(s.name, s.path); err != nil {
			return err
		}
	}

	return nil
}

// writeSnapshot writes one named pprof profile to path.
func writeSnapshot(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	if err := prof.WriteTo(f, 0); err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s profile: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return nil
}
