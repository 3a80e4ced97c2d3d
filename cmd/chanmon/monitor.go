/*------------------------------------------------------------------------------
* monitor.go : per-channel wiring of decoder, FSM and toy capabilities
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : toyAcquisition/toyTracking are stand-ins for the real signal
*          processing this module doesn't implement -- they exist only so
*          the FSM has something to call into when a roster entry expects
*          a capability bound.
 */
package main

import (
	"log"

	"gnsscore/channel"
	"gnsscore/cnav"
	"gnsscore/config"
	"gnsscore/control"
	"gnsscore/telemetry"
)

// toyAcquisition immediately reports acquisition valid on every reset, so
// a roster entry with expect_acquisition=true can exercise the ACQUIRING
// state without a real correlator behind it.
type toyAcquisition struct {
	logger *log.Logger
	fsm    *channel.FSM
}

func (t *toyAcquisition) Reset() {
	t.logger.Printf("acquisition: reset, reporting valid acquisition")
	if err := t.fsm.ProcessEvent(channel.EventValidAcquisition); err != nil {
		t.logger.Printf("acquisition: could not advance past valid acquisition: %v", err)
	}
}

type toyTracking struct {
	logger *log.Logger
}

func (t *toyTracking) StartTracking() {
	t.logger.Printf("tracking: started")
}

// logQueue logs every dispatched control message and reports its buffered
// depth to telemetry; it never blocks, matching the FSM's expectation
// that queue dispatch is fire-and-forget.
type logQueue struct {
	logger    *log.Logger
	telemetry telemetry.Sink
	depth     int
}

func (q *logQueue) Handle(m control.Message) {
	q.depth++
	q.logger.Printf("dispatch: channel=%d what=%v correlation_id=%s", m.ChannelID, m.What, m.CorrelationID)
	q.telemetry.SetQueueDepth(q.depth)
}

// channelMonitor owns one channel's FSM and decoder and feeds the decoder
// a stream of CNAV pages, logging every published ephemeris/iono/UTC
// record. Pages never drive the FSM; only start does.
type channelMonitor struct {
	spec      config.ChannelSpec
	decoder   *cnav.Decoder
	fsm       *channel.FSM
	logger    *log.Logger
	telemetry telemetry.Sink
}

func newChannelMonitor(spec config.ChannelSpec, sink telemetry.Sink, logger *log.Logger) *channelMonitor {
	fsm := channel.NewFSM()
	fsm.SetChannelID(spec.ChannelID)
	fsm.SetTelemetry(sink)

	m := &channelMonitor{
		spec:      spec,
		decoder:   cnav.NewDecoder(),
		fsm:       fsm,
		logger:    logger,
		telemetry: sink,
	}
	m.decoder.SetTelemetry(sink)

	if spec.ExpectAcquisition {
		fsm.SetAcquisition(&toyAcquisition{logger: logger, fsm: fsm})
	}
	if spec.ExpectTracking {
		fsm.SetTracking(&toyTracking{logger: logger})
	}
	if spec.ExpectQueue {
		fsm.SetQueue(&logQueue{logger: logger, telemetry: sink})
	}
	return m
}

// handlePage decodes one page and logs any record it newly publishes. It
// never returns an error: decode failures and unknown page types are
// already handled inside cnav.Decoder.
func (m *channelMonitor) handlePage(page cnav.Page) {
	if err := m.decoder.DecodePage(page); err != nil {
		m.logger.Printf("channel %d: decode error: %v", m.spec.ChannelID, err)
		return
	}

	if m.decoder.HaveNewEphemeris() {
		eph := m.decoder.GetEphemeris()
		m.logger.Printf("channel %d: published ephemeris toe1=%.1f toe2=%.1f", m.spec.ChannelID, eph.Toe1, eph.Toe2)
	}
	if m.decoder.HaveNewIono() {
		m.logger.Printf("channel %d: published iono", m.spec.ChannelID)
	}
	if m.decoder.HaveNewUtcModel() {
		m.logger.Printf("channel %d: published UTC model", m.spec.ChannelID)
	}
}

// start runs the channel's lifecycle once acquisition is requested,
// mirroring the single entry point a real receiver scheduler would call
// when it assigns a satellite to this channel.
func (m *channelMonitor) start() error {
	return m.fsm.ProcessEvent(channel.EventStartAcquisition)
}
