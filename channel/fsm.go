/*------------------------------------------------------------------------------
* fsm.go : channel lifecycle finite state machine
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : the upstream boost::statechart design lets states reach back
*          into the enclosing machine and flagged one transition
*          ("Event_failed_tracking_standby") as using memory after it is
*          freed, because the TRACKING state's destructor posts to the
*          queue after the state machine has already begun tearing the
*          state object down. There is no destructor-ordering hazard to
*          reproduce here: entry/exit actions are plain functions over an
*          actionContext captured by value *before* the state field is
*          mutated, so a queue post during a TRACKING exit always
*          completes against a stable snapshot, never a half-destroyed one.
 */
package channel

import (
	"fmt"

	"gnsscore/control"
	"gnsscore/telemetry"
)

// MissingCapabilityError reports that an entry action needed a provider
// that was never bound. It is fatal for the event that triggered it; the
// FSM's state is left exactly as it was before the event was processed.
type MissingCapabilityError struct {
	State      State
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("channel: entering %s requires %s to be bound", e.State, e.Capability)
}

// FSM is a single channel's lifecycle state machine. It is not internally
// thread-safe; see Synchronized for a locked wrapper.
type FSM struct {
	state       State
	channelID   uint
	acquisition AcquisitionProvider
	tracking    TrackingProvider
	queue       control.Queue
	telemetry   telemetry.Sink
}

// NewFSM returns an FSM in the IDLE state with no capabilities bound.
func NewFSM() *FSM {
	return &FSM{state: Idle, telemetry: telemetry.Noop{}}
}

// NewFSMWithAcquisition returns an FSM in the IDLE state with an
// acquisition provider already bound, mirroring the upstream constructor
// that takes a shared_ptr<AcquisitionInterface>.
func NewFSMWithAcquisition(acq AcquisitionProvider) *FSM {
	f := NewFSM()
	f.acquisition = acq
	return f
}

// SetTelemetry installs a telemetry sink. Passing nil restores the no-op
// default.
func (f *FSM) SetTelemetry(sink telemetry.Sink) {
	if sink == nil {
		sink = telemetry.Noop{}
	}
	f.telemetry = sink
}

// State returns the current lifecycle state.
func (f *FSM) State() State {
	return f.state
}

// actionContext is a value snapshot of everything an entry/exit action
// needs, taken before the state field changes.
type actionContext struct {
	channelID   uint
	acquisition AcquisitionProvider
	tracking    TrackingProvider
	queue       control.Queue
}

func (f *FSM) snapshot() actionContext {
	return actionContext{
		channelID:   f.channelID,
		acquisition: f.acquisition,
		tracking:    f.tracking,
		queue:       f.queue,
	}
}

func (c actionContext) dispatch(what control.What) {
	if c.queue != nil {
		c.queue.Handle(control.New(c.channelID, what))
	}
}

// ProcessEvent drives the transition table below. Unlisted (state, event)
// pairs are ignored: no transition, no side effect.
//
//	From \ Event         start_acq   valid_acq   failed_repeat   failed_no_repeat   failed_tracking_standby
//	IDLE                 ACQUIRING   --          --              --                 --
//	ACQUIRING             --         TRACKING    ACQUIRING(self)  WAITING            --
//	TRACKING              ACQUIRING   --          --              --                 IDLE
//	WAITING               ACQUIRING   --          --              --                 --
func (f *FSM) ProcessEvent(event Event) error {
	ctx := f.snapshot()

	switch f.state {
	case Idle:
		if event == EventStartAcquisition {
			return f.transition(Acquiring, ctx, event)
		}
	case Acquiring:
		switch event {
		case EventValidAcquisition:
			return f.transition(Tracking, ctx, event)
		case EventFailedAcqRepeat:
			return f.transition(Acquiring, ctx, event)
		case EventFailedAcqNoRepeat:
			return f.transition(Waiting, ctx, event)
		}
	case Tracking:
		switch event {
		case EventStartAcquisition:
			return f.transition(Acquiring, ctx, event)
		case EventFailedTrackingStandby:
			return f.transition(Idle, ctx, event)
		}
	case Waiting:
		if event == EventStartAcquisition {
			return f.transition(Acquiring, ctx, event)
		}
	}
	return nil
}

// transition validates the destination state's capability requirement,
// runs the outgoing state's exit action, mutates the state, then runs the
// incoming state's entry action. If the required capability is missing,
// nothing happens at all -- no exit action, no state change -- which is
// the "revert to the pre-transition state" spec requires.
func (f *FSM) transition(next State, ctx actionContext, event Event) error {
	switch next {
	case Acquiring:
		if ctx.acquisition == nil {
			f.telemetry.IncMissingCapability()
			return &MissingCapabilityError{State: next, Capability: "acquisition"}
		}
	case Tracking:
		if ctx.tracking == nil {
			f.telemetry.IncMissingCapability()
			return &MissingCapabilityError{State: next, Capability: "tracking"}
		}
	}

	prev := f.state
	if prev == Tracking {
		ctx.dispatch(control.TrackingStopped)
	}

	f.state = next

	switch next {
	case Acquiring:
		ctx.acquisition.Reset()
	case Tracking:
		ctx.tracking.StartTracking()
		ctx.dispatch(control.TrackingStarted)
	case Waiting:
		ctx.dispatch(control.RequestSatellite)
	}

	f.telemetry.IncFSMTransition(prev.String(), event.String())
	return nil
}
