// Package logger provides structured logging for the dataflow kit,
// built on zerolog.
//
// The translation core is silent by default; the driver and loaders log
// through a *Logger tagged with the component they belong to:
//
//	log := logger.NewDefault("dataflow").WithComponent("translate")
//	log.Debug("node focused", logger.Fields(logger.FieldNode, name))
package logger
