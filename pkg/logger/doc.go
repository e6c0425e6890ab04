// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// context of every *Context call (see WithContextExtractors).
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "bluecheck"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "check failed", logger.Kind("nip"), logger.Field("tax_id"))
//
// Records go to stderr by default. Error and Errors return an empty Attr for
// nil errors, which slog omits, so callers need no nil check.
package logger
