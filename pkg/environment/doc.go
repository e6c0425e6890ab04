// Package environment carries the application environment (development or
// production) through context.Context and into structured logs.
//
// Parse maps the APP_ENV setting to an Environment:
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx := environment.WithContext(context.Background(), env)
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context gets an "env" attribute.
package environment
