// Package environment carries the deployment environment (development,
// staging, production) of a fieldrules process through context.Context and
// into structured logs.
//
// Parse normalises user input such as APP_ENV values, accepting the short
// aliases "dev", "stage" and "prod". WithContext and FromContext move the
// value through a context, and LoggerExtractor turns it into a slog attribute
// for logger.WithContextExtractors.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // adds env=development
//
// Missing values resolve to the empty Environment; nothing here returns errors.
package environment
