/*------------------------------------------------------------------------------
* config.go : channel roster configuration
*
*          Copyright (C) 2022-2025, All rights reserved.
*
* notes  : host-side convenience only. It never implements acquisition,
*          tracking or the dispatch queue itself -- it just records which
*          bindings a channel expects, so a host can fail fast before
*          wiring up the FSM instead of discovering a MissingCapabilityError
*          at the first event.
 */
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChannelSpec describes one entry of a channel roster file.
type ChannelSpec struct {
	ChannelID         uint `yaml:"channel_id"`
	ExpectAcquisition bool `yaml:"expect_acquisition"`
	ExpectTracking    bool `yaml:"expect_tracking"`
	ExpectQueue       bool `yaml:"expect_queue"`
}

// Roster is an ordered list of channel specs, as loaded from YAML.
type Roster struct {
	Channels []ChannelSpec `yaml:"channels"`
}

// Load reads and parses a roster file. Each entry's ChannelID must be
// unique; duplicates are a configuration error rather than last-write-wins,
// since unlike the per-channel capability setters this is a one-shot load,
// not a runtime replacement.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading roster %s: %w", path, err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("config: parsing roster %s: %w", path, err)
	}

	seen := make(map[uint]bool, len(r.Channels))
	for _, c := range r.Channels {
		if seen[c.ChannelID] {
			return nil, fmt.Errorf("config: duplicate channel_id %d in roster %s", c.ChannelID, path)
		}
		seen[c.ChannelID] = true
	}
	return &r, nil
}
