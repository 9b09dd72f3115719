// Package logger builds *slog.Logger values with functional options.
//
// New chooses a JSON or text handler, applies static attributes and wraps
// the handler with LogHandlerDecorator, which runs ContextExtractor callbacks
// on every record. Extractors are how request-scoped values such as the
// request id and client IP end up on every line logged with that context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "yorkshire-web"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact submission accepted", logger.Component("contact"))
//
// Config and Setup read LOG_* variables. Setting LOG_FILE tees output to a
// size-rotated file managed by lumberjack.
package logger
