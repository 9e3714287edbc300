// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats: [FormatJSON] and [FormatLogfmt] map to
// the stdlib slog handlers, and [FormatText] produces human-readable console
// output via [charm.land/log/v2]. Use [NewHandler] to create a handler
// directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	if err != nil {
//	    return err
//	}
//
//	slog.SetDefault(slog.New(handler))
package log
