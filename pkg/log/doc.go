// Package log is the logging abstraction used by the renderer and the
// command line.
//
// The engine only depends on the [Logger] interface. [ZerologAdapter]
// backs it with zerolog for the CLI, and [NoopLogger] is the default for
// library callers that did not ask for output.
//
//	logger := log.NewZerologAdapter(zerolog.DebugLevel)
//	r := render.New(render.WithLogger(logger))
//
// Any other logging library can be plugged in by implementing the four
// level methods:
//
//	type MyLogger struct{ ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
