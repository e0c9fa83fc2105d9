package match

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Data directory layout, one file per match id in each.
const (
	metadataDir = "Metadata"
	eventsDir   = "Event Data"
	rostersDir  = "Rosters"
)

// A Repository hands out Match values loaded from a data directory,
// caching them by id.
type Repository struct {
	dir string
	log zerolog.Logger

	mu    sync.Mutex
	cache map[string]*Match
}

// NewRepository creates a repository rooted at dir.
func NewRepository(dir string, log zerolog.Logger) *Repository {
	return &Repository{
		dir:   dir,
		log:   log.With().Str("component", "match-repo").Logger(),
		cache: map[string]*Match{},
	}
}

// MatchIDs lists the available match ids, sorted. A missing metadata
// directory yields an empty list, not an error.
func (r *Repository) MatchIDs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.dir, metadataDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Match returns the match with the given id, loading its metadata on
// first use. Events and rosters load lazily from the same directory.
func (r *Repository) Match(id string) (*Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.cache[id]; ok {
		return m, nil
	}
	m, err := loadMatch(r.dir, id, r.log)
	if err != nil {
		return nil, err
	}
	r.cache[id] = m
	return m, nil
}

// metadata file shapes; the source data sometimes wraps the object in
// a one-element list.
type metadataFile struct {
	HomeTeam    teamInfo `json:"homeTeam"`
	AwayTeam    teamInfo `json:"awayTeam"`
	HomeTeamKit kitInfo  `json:"homeTeamKit"`
	AwayTeamKit kitInfo  `json:"awayTeamKit"`
	Date        string   `json:"date"`
	Stadium     struct {
		Name string `json:"name"`
	} `json:"stadium"`
}

type teamInfo struct {
	ID        json.Number `json:"id"`
	Name      string      `json:"name"`
	ShortName string      `json:"shortName"`
}

type kitInfo struct {
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	PrimaryTextColor string `json:"primaryTextColor"`
}

func loadMatch(dir, id string, log zerolog.Logger) (*Match, error) {
	m := &Match{ID: id, dir: dir, log: log.With().Str("match", id).Logger()}

	path := filepath.Join(dir, metadataDir, id+".json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m.log.Warn().Msg("no metadata file")
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata for %s: %w", id, err)
	}

	var md metadataFile
	if err := json.Unmarshal(raw, &md); err != nil {
		// retry as a one-element list
		var list []metadataFile
		if lerr := json.Unmarshal(raw, &list); lerr != nil || len(list) == 0 {
			return nil, fmt.Errorf("decoding metadata for %s: %w", id, err)
		}
		md = list[0]
	}

	m.Home = teamFrom(md.HomeTeam, md.HomeTeamKit)
	m.Away = teamFrom(md.AwayTeam, md.AwayTeamKit)
	m.Date = md.Date
	m.Stadium = md.Stadium.Name
	return m, nil
}

func teamFrom(t teamInfo, k kitInfo) Team {
	return Team{
		ID:             t.ID.String(),
		Name:           t.Name,
		ShortName:      t.ShortName,
		PrimaryColor:   k.PrimaryColor,
		SecondaryColor: k.SecondaryColor,
		TextColor:      k.PrimaryTextColor,
	}
}
