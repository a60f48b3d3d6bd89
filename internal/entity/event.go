package entity

type EventType string

const (
	ConversionCompletedEvent EventType = "conversion_completed"
	ConversionFailedEvent    EventType = "conversion_failed"
	ResizeCompletedEvent     EventType = "resize_completed"
	ResizeFailedEvent        EventType = "resize_failed"
)

// Event is the outcome of processing one input path. RequestID is set by the listener
// from the request the path belonged to.
type Event struct {
	RequestID string    `json:"request_id,omitempty"`
	Type      EventType `json:"type"`
	Input     string    `json:"input"`
	Output    []byte    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func ConversionCompleted(input string, output []byte) *Event {
	return &Event{Type: ConversionCompletedEvent, Input: input, Output: output}
}

func ConversionFailed(input string, err error) *Event {
	return &Event{Type: ConversionFailedEvent, Input: input, Error: err.Error()}
}

func ResizeCompleted(input string) *Event {
	return &Event{Type: ResizeCompletedEvent, Input: input}
}

func ResizeFailed(input string, err error) *Event {
	return &Event{Type: ResizeFailedEvent, Input: input, Error: err.Error()}
}
