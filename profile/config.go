package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	// Profile output path flag names.
	CPUProfile          string
	HeapProfile         string
	AllocsProfile       string
	GoroutineProfile    string
	ThreadcreateProfile string
	BlockProfile        string
	MutexProfile        string

	// Sampling rate flag names.
	MemProfileRate       string
	BlockProfileRate     string
	MutexProfileFraction string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds profiling configuration: output paths and sampling rates.
// A zero-value Config has all profiles disabled.
type Config struct {
	Flags Flags

	// Output paths; empty means disabled.
	CPUProfile          string
	HeapProfile         string
	AllocsProfile       string
	GoroutineProfile    string
	ThreadcreateProfile string
	BlockProfile        string
	MutexProfile        string

	// Sampling rates.
	MemProfileRate       int
	BlockProfileRate     int
	MutexProfileFraction int
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:           "cpu-profile",
		HeapProfile:          "heap-profile",
		AllocsProfile:        "allocs-profile",
		GoroutineProfile:     "goroutine-profile",
		ThreadcreateProfile:  "threadcreate-profile",
		BlockProfile:         "block-profile",
		MutexProfile:         "mutex-profile",
		MemProfileRate:       "mem-profile-rate",
		BlockProfileRate:     "block-profile-rate",
		MutexProfileFraction: "mutex-profile-fraction",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "",
		"write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "",
		"write heap profile to file")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, "",
		"write allocs profile to file")
	flags.StringVar(&c.GoroutineProfile, c.Flags.GoroutineProfile, "",
		"write goroutine profile to file")
	flags.StringVar(&c.ThreadcreateProfile, c.Flags.ThreadcreateProfile, "",
		"write threadcreate profile to file")
	flags.StringVar(&c.BlockProfile, c.Flags.BlockProfile, "",
		"write block profile to file")
	flags.StringVar(&c.MutexProfile, c.Flags.MutexProfile, "",
		"write mutex profile to file")

	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 524288,
		"memory profile rate (bytes per sample)")
	flags.IntVar(&c.BlockProfileRate, c.Flags.BlockProfileRate, 1,
		"block profile rate (nanoseconds)")
	flags.IntVar(&c.MutexProfileFraction, c.Flags.MutexProfileFraction, 1,
		"mutex profile fraction (1/N sampling)")
}

// RegisterCompletions registers shell completions for profiling flags on
// cmd. Rate flags take numbers, not files, so file completion is disabled
// for them; path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	rateFlags := []string{
		c.Flags.MemProfileRate,
		c.Flags.BlockProfileRate,
		c.Flags.MutexProfileFraction,
	}

	for _, flag := range rateFlags {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewProfiler creates a [Profiler] using this Config.
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}
