// Package logger provides structured logging helpers built on log/slog.
//
// New builds a *slog.Logger from functional options, and the attribute
// helpers produce consistent keys for the rest of the module. Helpers return
// an empty slog.Attr for zero values (nil errors, empty strings), which slog
// drops, so callers never need nil checks:
//
//	log := logger.New(
//		logger.WithProduction("media"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("archive written",
//		logger.Component("storage"),
//		logger.FilePath(path),
//		logger.Size(n),
//		logger.Error(err),
//	)
//
// WithDevelopment selects a text handler at debug level; WithProduction a
// JSON handler at info level. Both add a "service" attribute.
package logger
