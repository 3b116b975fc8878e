package message

import (
	"encoding/json"
	"fmt"
)

// Message is an immutable text to be signed or verified.
type Message struct {
	text string
}

// New wraps text into a Message. The text is treated as raw bytes, no
// particular encoding is required.
func New(text string) *Message {
	return &Message{text: text}
}

// FromJSON restores a message from its {"message": "..."} form. It is the
// only way to decode one; Message has no UnmarshalJSON so an existing value
// is never overwritten.
func FromJSON(data []byte) (*Message, error) {
	var raw messageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if raw.Message == nil {
		return nil, fmt.Errorf("%w: 'message' field is missing", ErrInvalidJSON)
	}
	return New(*raw.Message), nil
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) Bytes() []byte {
	return []byte(m.text)
}

func (m *Message) String() string {
	return m.text
}

func (m *Message) GoString() string {
	return fmt.Sprintf("<Message: %s>", m.text)
}

type messageJSON struct {
	Message *string `json:"message"`
}

func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{Message: &m.text})
}
