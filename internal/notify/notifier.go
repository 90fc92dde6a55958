// Package notify owns the delivery mechanics for reminder and escalation
// messages. Delivery is best effort end to end: a failed send is recorded and
// skipped, never retried within a cycle.
package notify

import "context"

// Notifier is the chat-gateway delivery collaborator.
type Notifier interface {
	// SendPrivate delivers a direct message to one user.
	SendPrivate(ctx context.Context, userID, message string) error

	// SendToChannel posts a message to a public channel. An empty channelID
	// asks the gateway to pick its best-effort default channel.
	SendToChannel(ctx context.Context, channelID, message string) error
}
