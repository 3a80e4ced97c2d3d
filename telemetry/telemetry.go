/*------------------------------------------------------------------------------
* telemetry.go : optional observability hooks for the decoder and the FSM
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : ambient, opt-in. Neither core component requires a sink to be
*          installed; Noop is the zero-value default everywhere.
 */
package telemetry

// Sink receives counters from the CNAV decoder and the channel FSM. Every
// method must be safe to call with a nil receiver absent (use Noop{}
// instead of a nil Sink).
type Sink interface {
	IncUnknownPageType()
	IncCrossPageMismatch()
	IncFSMTransition(from, event string)
	IncMissingCapability()
	SetQueueDepth(n int)
}

// Noop discards everything. It is the default sink for both cores.
type Noop struct{}

func (Noop) IncUnknownPageType()          {}
func (Noop) IncCrossPageMismatch()        {}
func (Noop) IncFSMTransition(_, _ string) {}
func (Noop) IncMissingCapability()        {}
func (Noop) SetQueueDepth(_ int)          {}
