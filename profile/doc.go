// Package profile adds runtime profiling to CLI applications.
//
// It supports the CPU profile and the heap, allocs, goroutine,
// threadcreate, block, and mutex snapshot profiles through command-line
// flags, along with the memory, block, and mutex sampling rates. Use
// [Config.RegisterFlags] to add CLI flags and [Config.NewProfiler] to
// create a [Profiler] wrapping command execution:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
// Users then enable profiling with flags like --cpu-profile=cpu.prof.
package profile
