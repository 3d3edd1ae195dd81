// Package logger builds configured log/slog loggers for docsafe components.
//
// Loggers are always passed around as explicit handles; nothing in this
// module reads or mutates the process-wide default. That keeps the validation
// engine pure and testable without global setup or teardown.
//
//	log := logger.New(
//		logger.WithProduction("docsafe"),
//		logger.WithAttr(logger.Component("safewrite")),
//	)
//
// The returned logger supports context extractors: functions that pull
// request-scoped values (an operation id, a document path) out of a
// context.Context at log time and attach them as attributes.
package logger
