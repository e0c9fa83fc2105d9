package match

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// A Match bundles one match's metadata with lazily loaded event and
// roster data.
type Match struct {
	ID      string
	Home    Team
	Away    Team
	Date    string
	Stadium string

	dir string
	log zerolog.Logger

	events       []Event
	eventsLoaded bool
	roster       map[string]string
}

// Events returns the match event stream, loading it on first use. A
// missing file yields an empty stream, not an error.
func (m *Match) Events() ([]Event, error) {
	if m.eventsLoaded {
		return m.events, nil
	}
	path := filepath.Join(m.dir, eventsDir, m.ID+".json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m.log.Warn().Msg("no event data file")
		m.eventsLoaded = true
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading events for %s: %w", m.ID, err)
	}
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("decoding events for %s: %w", m.ID, err)
	}
	m.events = events
	m.eventsLoaded = true
	m.log.Debug().Int("events", len(events)).Msg("loaded event stream")
	return m.events, nil
}

// rosterEntry is one line of the roster file.
type rosterEntry struct {
	Player struct {
		ID       json.Number `json:"id"`
		Nickname string      `json:"nickname"`
	} `json:"player"`
}

// PlayerName resolves a player id to a roster nickname, "" when the
// roster has no entry. The roster loads on first use; a missing file
// means every lookup misses.
func (m *Match) PlayerName(id int64) string {
	if id == 0 {
		return ""
	}
	if m.roster == nil {
		m.roster = map[string]string{}
		path := filepath.Join(m.dir, rostersDir, m.ID+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				m.log.Warn().Err(err).Msg("can't read roster")
			}
			return ""
		}
		var entries []rosterEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			m.log.Warn().Err(err).Msg("can't decode roster")
			return ""
		}
		for _, e := range entries {
			if e.Player.ID.String() != "" {
				m.roster[e.Player.ID.String()] = e.Player.Nickname
			}
		}
	}
	return m.roster[strconv.FormatInt(id, 10)]
}

// IsHome reports whether a team id belongs to the home side.
func (m *Match) IsHome(teamID string) bool {
	return teamID != "" && teamID == m.Home.ID
}
