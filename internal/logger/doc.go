// Package logger wraps a process-wide zap logger behind context-aware helpers.
// The level is atomic, so it can be raised or lowered after configuration is loaded,
// and transport code can cheaply check IsDebugLevel before dumping HTTP traffic.
package logger
