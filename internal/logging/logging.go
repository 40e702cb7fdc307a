// Package logging defines the small leveled logger used by bee's library packages.
// Commands print user-facing output with pterm; this logger carries diagnostics only.
package logging

import "go.uber.org/zap"

// Logger is a leveled, structured logger. keysAndValues alternate key, value.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

// Zap adapts a sugared zap logger.
type Zap struct{ S *zap.SugaredLogger }

func (z Zap) Debug(msg string, kv ...any) { z.S.Debugw(msg, kv...) }
func (z Zap) Info(msg string, kv ...any)  { z.S.Infow(msg, kv...) }
func (z Zap) Warn(msg string, kv ...any)  { z.S.Warnw(msg, kv...) }
func (z Zap) Error(msg string, kv ...any) { z.S.Errorw(msg, kv...) }

// New returns a development zap logger writing to stderr when debug is set, Nop otherwise.
func New(debug bool) (Logger, func()) {
	if !debug {
		return Nop{}, func() {}
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return Nop{}, func() {}
	}
	return Zap{S: l.Sugar()}, func() { _ = l.Sync() }
}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}
