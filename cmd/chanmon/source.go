/*------------------------------------------------------------------------------
* source.go : framed CNAV page source, serial or file
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : frame is [2-byte big-endian length = 38][38-byte page]. This
*          framing exists only at the host boundary; cnav.Decoder never
*          sees it.
 */
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	serial "github.com/tarm/goserial"

	"gnsscore/cnav"
)

// pageSource yields framed CNAV pages until the underlying stream ends.
type pageSource struct {
	r      io.Reader
	closer io.Closer
}

// openPageSource opens path as a serial port (serial://name:baud) or,
// for anything else, a plain file for offline replay.
func openPageSource(path string) (*pageSource, error) {
	if strings.HasPrefix(path, "serial://") {
		rest := strings.TrimPrefix(path, "serial://")
		name, baud := rest, 9600
		if idx := strings.Index(rest, ":"); idx >= 0 {
			name = rest[:idx]
			fmt.Sscanf(rest[idx+1:], "%d", &baud)
		}
		port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
		if err != nil {
			return nil, fmt.Errorf("chanmon: opening serial port %s: %w", name, err)
		}
		return &pageSource{r: port, closer: port}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chanmon: opening replay file %s: %w", path, err)
	}
	return &pageSource{r: f, closer: f}, nil
}

// next reads one framed page, blocking until the frame is complete. It
// returns io.EOF once the stream is exhausted cleanly at a frame boundary.
func (s *pageSource) next() (cnav.Page, error) {
	var page cnav.Page

	var lenBuf [2]byte
	if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
		return page, err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	if int(n) != cnav.DataPageBytes {
		return page, fmt.Errorf("chanmon: frame length %d, want %d", n, cnav.DataPageBytes)
	}

	if _, err := io.ReadFull(s.r, page[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF // stream ended inside a frame
		}
		return page, err
	}
	return page, nil
}

func (s *pageSource) Close() error {
	return s.closer.Close()
}
