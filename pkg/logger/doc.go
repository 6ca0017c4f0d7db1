// Package logger builds *slog.Logger values for fieldrules commands.
//
// New takes functional options for output format (text or json), level,
// static attributes and context extractors. Extractors run on every record,
// which is how the per-invocation run ID and the environment end up in each
// log line without threading a logger through every call.
//
// Helper constructors in attr.go (Error, Subject, Field, ...) keep attribute
// keys consistent across packages. Error returns an empty Attr for a nil
// error, so callers can log it unconditionally.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "fieldrules"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validated", logger.Subject("login_request"))
package logger
