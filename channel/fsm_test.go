package channel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gnsscore/channel"
	"gnsscore/control"
)

type fakeAcquisition struct{ resets int }

func (f *fakeAcquisition) Reset() { f.resets++ }

type fakeTracking struct{ starts int }

func (f *fakeTracking) StartTracking() { f.starts++ }

type fakeQueue struct{ messages []control.Message }

func (q *fakeQueue) Handle(m control.Message) { q.messages = append(q.messages, m) }

func Test_Idle_StartAcquisition_EntersAcquiring(t *testing.T) {
	acq := &fakeAcquisition{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)

	err := fsm.ProcessEvent(channel.EventStartAcquisition)
	assert.NoError(t, err)
	assert.Equal(t, channel.Acquiring, fsm.State())
	assert.Equal(t, 1, acq.resets)
}

func Test_AcquiringToTracking_NotifiesQueue(t *testing.T) {
	acq := &fakeAcquisition{}
	trk := &fakeTracking{}
	q := &fakeQueue{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	fsm.SetTracking(trk)
	fsm.SetQueue(q)
	fsm.SetChannelID(7)

	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	assert.NoError(t, fsm.ProcessEvent(channel.EventValidAcquisition))

	assert.Equal(t, channel.Tracking, fsm.State())
	assert.Equal(t, 1, trk.starts)
	assert.Len(t, q.messages, 1)
	assert.Equal(t, uint(7), q.messages[0].ChannelID)
	assert.Equal(t, control.TrackingStarted, q.messages[0].What)
}

func Test_TrackingToIdle_OnFailedTrackingStandby(t *testing.T) {
	acq := &fakeAcquisition{}
	trk := &fakeTracking{}
	q := &fakeQueue{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	fsm.SetTracking(trk)
	fsm.SetQueue(q)
	fsm.SetChannelID(7)

	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	assert.NoError(t, fsm.ProcessEvent(channel.EventValidAcquisition))
	assert.NoError(t, fsm.ProcessEvent(channel.EventFailedTrackingStandby))

	assert.Equal(t, channel.Idle, fsm.State())
	assert.Len(t, q.messages, 2)
	assert.Equal(t, control.TrackingStopped, q.messages[1].What)
}

func Test_FailedAcquisitionNoRepeat_EntersWaiting(t *testing.T) {
	acq := &fakeAcquisition{}
	q := &fakeQueue{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	fsm.SetQueue(q)

	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	assert.NoError(t, fsm.ProcessEvent(channel.EventFailedAcqNoRepeat))

	assert.Equal(t, channel.Waiting, fsm.State())
	assert.Len(t, q.messages, 1)
	assert.Equal(t, control.RequestSatellite, q.messages[0].What)
}

func Test_Idle_ValidAcquisition_IsIgnored(t *testing.T) {
	fsm := channel.NewFSM()
	err := fsm.ProcessEvent(channel.EventValidAcquisition)
	assert.NoError(t, err)
	assert.Equal(t, channel.Idle, fsm.State())
}

func Test_FailedAcqRepeat_SelfTransitionRerunsEntryAction(t *testing.T) {
	acq := &fakeAcquisition{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)

	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	assert.Equal(t, 1, acq.resets)
	assert.NoError(t, fsm.ProcessEvent(channel.EventFailedAcqRepeat))
	assert.Equal(t, channel.Acquiring, fsm.State())
	assert.Equal(t, 2, acq.resets)
}

func Test_MissingAcquisition_FailsLoudly_StateUnchanged(t *testing.T) {
	fsm := channel.NewFSM() // no acquisition bound
	err := fsm.ProcessEvent(channel.EventStartAcquisition)
	assert.Error(t, err)
	var missing *channel.MissingCapabilityError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, channel.Idle, fsm.State())
}

func Test_MissingTracking_FailsLoudly_StateUnchanged(t *testing.T) {
	acq := &fakeAcquisition{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))

	err := fsm.ProcessEvent(channel.EventValidAcquisition) // no tracking bound
	assert.Error(t, err)
	assert.Equal(t, channel.Acquiring, fsm.State())
}

func Test_UnboundQueue_IsNotAnError(t *testing.T) {
	acq := &fakeAcquisition{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	err := fsm.ProcessEvent(channel.EventStartAcquisition)
	assert.NoError(t, err)
	assert.Equal(t, channel.Acquiring, fsm.State())
}

func Test_ReplacingTrackingMidLifecycle_UsesNewProviderAtNextEntry(t *testing.T) {
	acq := &fakeAcquisition{}
	first := &fakeTracking{}
	second := &fakeTracking{}
	fsm := channel.NewFSM()
	fsm.SetAcquisition(acq)
	fsm.SetTracking(first)

	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	fsm.SetTracking(second) // replace before entry action runs
	assert.NoError(t, fsm.ProcessEvent(channel.EventValidAcquisition))

	assert.Equal(t, 0, first.starts)
	assert.Equal(t, 1, second.starts)
}

func Test_NewFSMWithAcquisition_BindsAcquisitionAtConstruction(t *testing.T) {
	acq := &fakeAcquisition{}
	fsm := channel.NewFSMWithAcquisition(acq)
	assert.NoError(t, fsm.ProcessEvent(channel.EventStartAcquisition))
	assert.Equal(t, 1, acq.resets)
}
