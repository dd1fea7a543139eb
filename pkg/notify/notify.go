package notify

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is a transient notification destined for the operator.
type Toast struct {
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// Buffer collects toasts until the adaptor drains them into a response.
// The console serves a single operator, so one shared buffer is enough.
type Buffer struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) push(message string, level Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.toasts = append(b.toasts, Toast{Message: message, Level: level})
}

func (b *Buffer) Success(message string) { b.push(message, LevelSuccess) }
func (b *Buffer) Warning(message string) { b.push(message, LevelWarning) }
func (b *Buffer) Error(message string)   { b.push(message, LevelError) }

// Drain returns all buffered toasts and resets the buffer.
func (b *Buffer) Drain() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	toasts := b.toasts
	b.toasts = nil
	return toasts
}
