/*------------------------------------------------------------------------------
* capabilities.go : acquisition/tracking capability interfaces and bindings
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : acquisition/tracking/queue are non-owning handles shared with the
*          receiver; their lifetime must outlive the FSM. Setters are
*          idempotent and last-write-wins -- a replacement mid-lifecycle
*          takes effect at the next entry action, not retroactively.
 */
package channel

import "gnsscore/control"

// AcquisitionProvider is the capability the ACQUIRING entry action drives.
// The real signal-acquisition algorithm lives outside this package; this
// is only the interface the FSM calls into.
type AcquisitionProvider interface {
	Reset()
}

// TrackingProvider is the capability the TRACKING entry action drives.
type TrackingProvider interface {
	StartTracking()
}

// SetAcquisition installs (or replaces) the acquisition capability.
func (f *FSM) SetAcquisition(acq AcquisitionProvider) {
	f.acquisition = acq
}

// SetTracking installs (or replaces) the tracking capability.
func (f *FSM) SetTracking(trk TrackingProvider) {
	f.tracking = trk
}

// SetQueue installs (or replaces) the dispatch queue. A nil queue is not
// an error: transitions still occur, control tokens are simply dropped.
func (f *FSM) SetQueue(q control.Queue) {
	f.queue = q
}

// SetChannelID installs (or replaces) the integer channel identity stamped
// onto every control token this FSM emits.
func (f *FSM) SetChannelID(id uint) {
	f.channelID = id
}
