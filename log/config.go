package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds the CLI flag names used by [Config.RegisterFlags], so hosts
// can rename the flags while keeping the defaults from [NewConfig].
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config carries the level and format strings from flag parsing to handler
// construction.
//
// Create instances with [NewConfig], register CLI flags with
// [Config.RegisterFlags], and build the handler at startup with
// [Config.NewHandler].
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] with the default flag names.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds the logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, string(LevelInfo),
		"log level, one of: "+strings.Join(GetAllLevelStrings(), ", "))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatText),
		"log format, one of: "+strings.Join(GetAllFormatStrings(), ", "))
}

// RegisterCompletions registers shell completions for the logging flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for flag, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewHandler builds the [slog.Handler] described by the stored level and
// format strings, writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
