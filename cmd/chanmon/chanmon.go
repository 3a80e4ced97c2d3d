/*------------------------------------------------------------------------------
* chanmon.go : channel monitor, console demo host
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : in the shape of the teacher's str2str/rtkrcv: flag-parsed CLI,
*          runs until every page source is exhausted or SIGINT/SIGTERM
*          arrives, status printed to stderr.
*-----------------------------------------------------------------------------*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"gnsscore/config"
	"gnsscore/telemetry"
)

var help = []string{
	"",
	" usage: chanmon -roster roster.yaml -in source[,source...] [options]",
	"",
	" Runs one channel lifecycle state machine and CNAV decoder per",
	" roster entry and feeds the decoder a stream of framed CNAV pages.",
	" The input stream can be a serial port (serial://device[:baud]) or a",
	" file of the same framing, for offline replay.",
	"",
	" -roster file   channel roster YAML (required)",
	" -in    sources comma-separated page sources, one per roster entry",
	"                in order, or a single source shared by every channel",
	" -metrics       install a Prometheus telemetry sink [off]",
	" -h             print help",
}

func printHelp() {
	for _, line := range help {
		fmt.Fprintln(os.Stderr, line)
	}
}

func main() {
	var rosterPath, inSources string
	var withMetrics bool
	flag.StringVar(&rosterPath, "roster", "", "channel roster YAML")
	flag.StringVar(&inSources, "in", "", "comma-separated page sources")
	flag.BoolVar(&withMetrics, "metrics", false, "install a Prometheus telemetry sink")
	flag.Usage = printHelp
	flag.Parse()

	if rosterPath == "" || inSources == "" {
		printHelp()
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "chanmon: ", log.LstdFlags)

	roster, err := config.Load(rosterPath)
	if err != nil {
		logger.Fatalf("loading roster: %v", err)
	}

	var sink telemetry.Sink = telemetry.Noop{}
	if withMetrics {
		sink = telemetry.NewPrometheus(prometheus.DefaultRegisterer)
		logger.Printf("telemetry: prometheus sink installed")
	}

	sources := strings.Split(inSources, ",")
	if len(sources) == 1 {
		repeated := make([]string, len(roster.Channels))
		for i := range repeated {
			repeated[i] = sources[0]
		}
		sources = repeated
	}
	if len(sources) != len(roster.Channels) {
		logger.Fatalf("%d page sources given for %d roster entries", len(sources), len(roster.Channels))
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Printf("shutdown requested")
		cancel()
	}()

	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range roster.Channels {
		spec, path := spec, sources[i]
		g.Go(func() error {
			return runChannel(ctx, spec, path, sink, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatalf("channel monitor stopped: %v", err)
	}
}

// runChannel opens its page source, wires one channelMonitor and feeds it
// pages until the source is exhausted or ctx is cancelled.
func runChannel(ctx context.Context, spec config.ChannelSpec, path string, sink telemetry.Sink, logger *log.Logger) error {
	src, err := openPageSource(path)
	if err != nil {
		return fmt.Errorf("channel %d: %w", spec.ChannelID, err)
	}
	defer src.Close()

	chLogger := log.New(logger.Writer(), fmt.Sprintf("chanmon[%d]: ", spec.ChannelID), log.LstdFlags)
	mon := newChannelMonitor(spec, sink, chLogger)
	if err := mon.start(); err != nil {
		return fmt.Errorf("channel %d: starting acquisition: %w", spec.ChannelID, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		page, err := src.next()
		if err == io.EOF {
			chLogger.Printf("page source exhausted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("channel %d: reading page: %w", spec.ChannelID, err)
		}
		mon.handlePage(page)
	}
}
