/*------------------------------------------------------------------------------
* control.go : control message factory
*
*          Copyright (C) 2022-2025, All rights reserved.
 */
package control

import "github.com/google/uuid"

// What identifies the kind of control token pushed onto the dispatch
// queue. Tokens are opaque to the FSM -- the host interprets them.
type What int

const (
	RequestSatellite  What = 0
	TrackingStarted   What = 1
	TrackingStopped   What = 2
)

// Message is the (channel_id, what) token the FSM emits on transitions.
type Message struct {
	ChannelID    uint
	What         What
	CorrelationID uuid.UUID
}

// New constructs a Message, stamping it with a fresh correlation id so a
// host can trace one token back to the FSM event that produced it across
// logs and telemetry. The FSM itself never inspects CorrelationID.
func New(channelID uint, what What) Message {
	return Message{
		ChannelID:     channelID,
		What:          what,
		CorrelationID: uuid.New(),
	}
}

// Queue is the dispatch sink the FSM writes control tokens to. The host
// supplies an implementation; the FSM only ever calls Handle.
type Queue interface {
	Handle(Message)
}
