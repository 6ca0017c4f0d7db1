package environment

import (
	"context"
	"log/slog"
)

// LogKey is the attribute key the environment is logged under.
const LogKey = "env"

// LoggerExtractor logs the environment stored by WithContext under LogKey.
// Records whose context carries no environment are left untouched.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String(LogKey, env.String()), true
	}
}
