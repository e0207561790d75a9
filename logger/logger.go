// Package logger dispatches log calls to the registered backends.
// Nothing is logged until Init is called.
package logger

import "sync"

// Instance defines a logging backend.
type Instance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
}

type logger struct {
	instances []Instance
}

var (
	mux       sync.RWMutex
	singleton *logger
)

func get() *logger {
	mux.RLock()
	defer mux.RUnlock()
	return singleton
}

// Init registers logging backends, replacing previous ones.
func Init(instances ...Instance) {
	mux.Lock()
	defer mux.Unlock()
	singleton = &logger{instances: instances}
}

// Reset removes all backends.
func Reset() {
	mux.Lock()
	defer mux.Unlock()
	singleton = nil
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) {
	if l := get(); l != nil {
		for _, instance := range l.instances {
			instance.Debug(message, keyvals...)
		}
	}
}

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) {
	if l := get(); l != nil {
		for _, instance := range l.instances {
			instance.Info(message, keyvals...)
		}
	}
}

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) {
	if l := get(); l != nil {
		for _, instance := range l.instances {
			instance.Warn(message, keyvals...)
		}
	}
}

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) {
	if l := get(); l != nil {
		for _, instance := range l.instances {
			instance.Error(message, keyvals...)
		}
	}
}
