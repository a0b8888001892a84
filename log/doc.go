// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats ([FormatText], [FormatLogfmt], and
// [FormatJSON]) and four severity levels ([LevelError], [LevelWarn],
// [LevelInfo], and [LevelDebug]). Use [NewHandler] to create a handler
// directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// The package defines two sentinel errors for use with [errors.Is]:
// [ErrUnknownLevel] and [ErrUnknownFormat].
package log
