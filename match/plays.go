package match

import (
	"sort"
)

// A Play is one possession event flattened for display: resolved
// player names, outcome, labels, and the positional snapshot to
// render.
type Play struct {
	Index         int
	EventID       string
	Sequence      int
	HasSequence   bool
	Time          string
	Period        int
	EventType     string
	Label         string
	SetpieceType  string
	SetpieceLabel string
	TeamID        string
	TeamName      string
	PlayerName    string
	PlayerID      int64
	SecondaryName string
	SecondaryID   int64
	AssisterName  string
	AssisterID    int64
	KeeperName    string
	KeyPlayerIDs  []int64
	Outcome       string
	IsGoal        bool
	Ball          *Position
	HomePlayers   []SnapshotPlayer
	AwayPlayers   []SnapshotPlayer
	PassType      string
	ShotType      string
	PressureType  string
}

// A PlaySequence is one possession: its ordered events plus the
// possession-level framing.
type PlaySequence struct {
	ID       int
	TeamID   string
	Setpiece string
	Time     string
	Events   []Play
}

// primaryPlayer resolves the acting player for an event type. For
// challenges both duelists are named.
func primaryPlayer(e *Event) (string, int64) {
	p := &e.Possession
	switch p.PossessionEventType {
	case "PA":
		return p.PasserPlayerName, p.PasserPlayerID
	case "SH":
		return p.ShooterPlayerName, p.ShooterPlayerID
	case "CR":
		return p.CrosserPlayerName, p.CrosserPlayerID
	case "CL":
		return p.ClearerPlayerName, p.ClearerPlayerID
	case "CH":
		name := p.HomeDuelPlayerName
		switch {
		case p.HomeDuelPlayerName != "" && p.AwayDuelPlayerName != "":
			name = p.HomeDuelPlayerName + " vs " + p.AwayDuelPlayerName
		case p.AwayDuelPlayerName != "":
			name = p.AwayDuelPlayerName
		}
		id := p.HomeDuelPlayerID
		if id == 0 {
			id = p.AwayDuelPlayerID
		}
		return name, id
	case "TC":
		return p.TouchPlayerName, p.TouchPlayerID
	case "BC":
		return p.BallCarrierName, p.BallCarrierPlayerID
	case "RE":
		return p.RebounderPlayerName, p.RebounderPlayerID
	}
	return e.Game.PlayerName, e.Game.PlayerID
}

// secondaryPlayer resolves the receiving/opposing player where the
// event type has one.
func secondaryPlayer(e *Event) (string, int64) {
	p := &e.Possession
	switch p.PossessionEventType {
	case "PA":
		name := p.ReceiverPlayerName
		if name == "" {
			name = p.TargetPlayerName
		}
		id := p.ReceiverPlayerID
		if id == 0 {
			id = p.TargetPlayerID
		}
		return name, id
	case "CR":
		return p.TargetPlayerName, p.TargetPlayerID
	case "SH":
		return "", p.KeeperPlayerID
	}
	return "", 0
}

// outcomeOf extracts the per-type outcome code.
func outcomeOf(e *Event) string {
	p := &e.Possession
	switch p.PossessionEventType {
	case "PA":
		return p.PassOutcomeType
	case "SH":
		return p.ShotOutcomeType
	case "CR":
		return p.CrossOutcomeType
	case "CL":
		return p.ClearanceOutcomeType
	case "CH":
		return p.ChallengeOutcomeType
	}
	return ""
}

// keyPlayerIDs collects the ids a viewer should highlight for an
// event: actor, secondary, assister for shots, both duelists for
// challenges.
func keyPlayerIDs(e *Event, playerID, secondaryID int64) []int64 {
	var ids []int64
	add := func(id int64) {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	add(playerID)
	add(secondaryID)
	switch e.Possession.PossessionEventType {
	case "SH":
		add(e.Possession.PasserPlayerID)
	case "CH":
		add(e.Possession.HomeDuelPlayerID)
		add(e.Possession.AwayDuelPlayerID)
	}
	return ids
}

// AllPlays flattens every possession event of the match, skipping
// records without a possession type and disallowed (nonEvent)
// records. Missing player names are enriched from the roster.
func (m *Match) AllPlays() ([]Play, error) {
	events, err := m.Events()
	if err != nil {
		return nil, err
	}
	var plays []Play
	for i := range events {
		e := &events[i]
		if e.Possession.PossessionEventType == "" || e.Possession.NonEvent {
			continue
		}

		playerName, playerID := primaryPlayer(e)
		if playerName == "" && playerID != 0 {
			if playerName = m.PlayerName(playerID); playerName == "" {
				playerName = "Unknown"
			}
		}
		secondaryName, secondaryID := secondaryPlayer(e)
		if secondaryName == "" && secondaryID != 0 {
			secondaryName = m.PlayerName(secondaryID)
		}

		outcome := outcomeOf(e)
		eventType := e.Possession.PossessionEventType
		seq, hasSeq := e.Seq()

		p := Play{
			Index:         i,
			EventID:       e.GameEventID.String(),
			Sequence:      seq,
			HasSequence:   hasSeq,
			Time:          e.Game.FormattedClock,
			Period:        e.Game.Period,
			EventType:     eventType,
			Label:         EventLabel(eventType),
			SetpieceType:  e.Game.SetpieceType,
			SetpieceLabel: SetpieceLabel(e.Game.SetpieceType),
			TeamID:        e.TeamID(),
			TeamName:      e.Game.TeamName,
			PlayerName:    playerName,
			PlayerID:      playerID,
			SecondaryName: secondaryName,
			SecondaryID:   secondaryID,
			KeeperName:    "",
			KeyPlayerIDs:  keyPlayerIDs(e, playerID, secondaryID),
			Outcome:       outcome,
			IsGoal:        eventType == "SH" && outcome == "G",
			Ball:          e.BallPosition(),
			HomePlayers:   e.HomePlayers,
			AwayPlayers:   e.AwayPlayers,
			PassType:      e.Possession.PassType,
			ShotType:      e.Possession.ShotType,
			PressureType:  e.Possession.PressureType,
		}
		if eventType == "SH" {
			p.AssisterName = e.Possession.PasserPlayerName
			p.AssisterID = e.Possession.PasserPlayerID
			p.KeeperName = e.Possession.KeeperPlayerName
		}
		plays = append(plays, p)
	}
	return plays, nil
}

// PlaySequences groups the match's plays by possession sequence,
// ordered by sequence id. Plays without a sequence number are
// dropped.
func (m *Match) PlaySequences() ([]PlaySequence, error) {
	plays, err := m.AllPlays()
	if err != nil {
		return nil, err
	}
	byID := map[int]*PlaySequence{}
	for _, p := range plays {
		if !p.HasSequence {
			continue
		}
		s, ok := byID[p.Sequence]
		if !ok {
			setpiece := p.SetpieceLabel
			if setpiece == "" {
				setpiece = "Open Play"
			}
			s = &PlaySequence{
				ID:       p.Sequence,
				TeamID:   p.TeamID,
				Setpiece: setpiece,
				Time:     p.Time,
			}
			byID[p.Sequence] = s
		}
		if s.Time == "" {
			s.Time = p.Time
		}
		s.Events = append(s.Events, p)
	}

	out := make([]PlaySequence, 0, len(byID))
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
