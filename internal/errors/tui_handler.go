package errors

import (
	"time"
)

// TUIHandler handles messages by recording them for display in the TUI
// status line. Each recorded message is also forwarded to an optional
// callback so the view can react immediately.
type TUIHandler struct {
	messages []Message
	onChange func(msg Message)
}

// Message is one recorded status message.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// MessageType classifies a message for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// NewTUIHandler creates a TUI handler. onChange may be nil.
func NewTUIHandler(onChange func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages: make([]Message, 0),
		onChange: onChange,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.record(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.record(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.record(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.record(msg, MessageTypeSuccess)
}

func (h *TUIHandler) record(text string, msgType MessageType) {
	message := Message{
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	h.messages = append(h.messages, message)

	if h.onChange != nil {
		h.onChange(message)
	}
}

// GetLatest returns the most recent message, if any.
func (h *TUIHandler) GetLatest() (Message, bool) {
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// GetAll returns a copy of all recorded messages.
func (h *TUIHandler) GetAll() []Message {
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Clear drops all recorded messages.
func (h *TUIHandler) Clear() {
	h.messages = h.messages[:0]
}
