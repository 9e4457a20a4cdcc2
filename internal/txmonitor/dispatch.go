package txmonitor

import "context"

// Message is a rendered notification ready for delivery.
type Message struct {
	Destination        string // chat identifier understood by the Dispatcher
	Text               string
	Markdown           bool // render Text with the channel's Markdown dialect
	DisableLinkPreview bool
}

// Dispatcher delivers rendered notifications to an outbound channel.
//
// Implementations should not retry: the engine records a signature before it
// dispatches, so a failed send means the alert is dropped.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
