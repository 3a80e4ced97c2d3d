package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gnsscore/control"
)

func Test_New_StampsChannelIDAndWhat(t *testing.T) {
	m := control.New(7, control.TrackingStarted)
	assert.Equal(t, uint(7), m.ChannelID)
	assert.Equal(t, control.TrackingStarted, m.What)
}

func Test_New_AssignsDistinctCorrelationIDs(t *testing.T) {
	a := control.New(1, control.RequestSatellite)
	b := control.New(1, control.RequestSatellite)
	assert.NotEqual(t, a.CorrelationID, b.CorrelationID)
}

type recordingQueue struct{ received []control.Message }

func (q *recordingQueue) Handle(m control.Message) { q.received = append(q.received, m) }

func Test_Queue_ReceivesHandledMessage(t *testing.T) {
	q := &recordingQueue{}
	q.Handle(control.New(3, control.TrackingStopped))
	assert.Len(t, q.received, 1)
	assert.Equal(t, control.TrackingStopped, q.received[0].What)
}
