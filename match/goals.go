package match

import (
	"fmt"
)

// Goal extraction tuning: how far back to scan for buildup passes,
// how many sequence numbers back still count as buildup, how many
// passes to keep, and the per-side cap on key players.
const (
	goalLookback      = 20
	goalSeqWindow     = 3
	goalMaxPasses     = 5
	goalMaxKeyPerSide = 6
)

// A GoalPass is one buildup pass preceding a goal.
type GoalPass struct {
	PasserName   string
	ReceiverName string
	Time         string
	TeamID       string
	Ball         *Position
}

// A KeyPlayer is a player snapshot enriched with a display name.
type KeyPlayer struct {
	SnapshotPlayer
	Name string
}

// A Goal is one scored goal with its buildup: the pass sequence, the
// ball position of the shot, and the key players of both sides at
// that moment.
type Goal struct {
	EventIndex  int
	Time        string
	Period      int
	ScorerName  string
	TeamID      string
	IsPenalty   bool
	Ball        *Position
	Passes      []GoalPass
	HomePlayers []KeyPlayer
	AwayPlayers []KeyPlayer
}

// isScoredGoal applies the goal filters: a shot with outcome "G" that
// is not flagged nonEvent (disallowed by VAR/offside).
func isScoredGoal(e *Event) bool {
	return e.Possession.ShotOutcomeType == "G" && !e.Possession.NonEvent
}

// goalKey dedups goals recorded by multiple overlapping events.
func goalKey(e *Event) string {
	return fmt.Sprintf("%s_%d", e.Game.FormattedClock, e.Possession.ShooterPlayerID)
}

// CountGoals counts scored goals with the same filters and
// deduplication FindGoals applies.
func (m *Match) CountGoals() (int, error) {
	events, err := m.Events()
	if err != nil {
		return 0, err
	}
	seen := map[string]bool{}
	count := 0
	for i := range events {
		e := &events[i]
		if !isScoredGoal(e) || seen[goalKey(e)] {
			continue
		}
		seen[goalKey(e)] = true
		count++
	}
	return count, nil
}

// FindGoals extracts every scored goal with its buildup pass sequence
// and key-player snapshots.
func (m *Match) FindGoals() ([]Goal, error) {
	events, err := m.Events()
	if err != nil {
		return nil, err
	}
	var goals []Goal
	seen := map[string]bool{}

	for i := range events {
		e := &events[i]
		if !isScoredGoal(e) || seen[goalKey(e)] {
			continue
		}
		seen[goalKey(e)] = true

		isPenalty := e.Game.SetpieceType == "P" || e.Possession.ShotType == "PK"

		var passes []GoalPass
		var involvedOrder []int64
		involved := map[int64]KeyPlayer{}

		if seq, ok := e.Seq(); ok && !isPenalty {
			start := i - goalLookback
			if start < 0 {
				start = 0
			}
			for j := start; j < i; j++ {
				prev := &events[j]
				prevSeq, ok := prev.Seq()
				if !ok || prevSeq < seq-goalSeqWindow || prevSeq > seq {
					continue
				}
				if prev.Possession.PossessionEventType != "PA" {
					continue
				}
				passerID := prev.Possession.PasserPlayerID
				passerName := prev.Possession.PasserPlayerName
				receiverID := prev.Possession.ReceiverPlayerID
				receiverName := prev.Possession.ReceiverPlayerName
				if receiverID == 0 {
					receiverID = prev.Possession.TargetPlayerID
				}
				if receiverName == "" {
					receiverName = prev.Possession.TargetPlayerName
				}

				if passerName != "" {
					passes = append(passes, GoalPass{
						PasserName:   passerName,
						ReceiverName: receiverName,
						Time:         prev.Game.FormattedClock,
						TeamID:       prev.TeamID(),
						Ball:         prev.BallPosition(),
					})
				}

				for _, pair := range []struct {
					id   int64
					name string
				}{{passerID, passerName}, {receiverID, receiverName}} {
					if pair.id == 0 {
						continue
					}
					if kp, ok := snapshotFor(prev, pair.id, pair.name); ok {
						if _, dup := involved[pair.id]; !dup {
							involvedOrder = append(involvedOrder, pair.id)
						}
						involved[pair.id] = kp
					}
				}
			}
		}
		if len(passes) > goalMaxPasses {
			passes = passes[len(passes)-goalMaxPasses:]
		}

		scorerID := e.Possession.ShooterPlayerID
		scorerName := e.Possession.ShooterPlayerName
		if scorerName == "" && scorerID != 0 {
			scorerName = m.PlayerName(scorerID)
			if scorerName == "" {
				scorerName = "Unknown"
			}
		}

		g := Goal{
			EventIndex: i,
			Time:       e.Game.FormattedClock,
			Period:     e.Game.Period,
			ScorerName: scorerName,
			TeamID:     e.TeamID(),
			IsPenalty:  isPenalty,
			Ball:       e.BallPosition(),
		}
		g.Passes = passes

		keeperID := e.Possession.KeeperPlayerID
		keeperName := e.Possession.KeeperPlayerName

		if isPenalty {
			// penalties show only the shooter and the goalkeepers
			if kp, home, ok := sideSnapshotFor(e, scorerID, scorerName); ok {
				kp.PositionGroup = "CF"
				if home {
					g.HomePlayers = append(g.HomePlayers, kp)
				} else {
					g.AwayPlayers = append(g.AwayPlayers, kp)
				}
			}
			appendKeepers(&g, e, keeperID, keeperName)
		} else {
			appendKeepers(&g, e, keeperID, keeperName)
			for _, id := range involvedOrder {
				kp := involved[id]
				if isHomeSnapshot(e, id) {
					if len(g.HomePlayers) < goalMaxKeyPerSide {
						g.HomePlayers = append(g.HomePlayers, kp)
					}
				} else if len(g.AwayPlayers) < goalMaxKeyPerSide {
					g.AwayPlayers = append(g.AwayPlayers, kp)
				}
			}
			if scorerID != 0 && !containsPlayer(g.HomePlayers, scorerID) && !containsPlayer(g.AwayPlayers, scorerID) {
				if kp, home, ok := sideSnapshotFor(e, scorerID, scorerName); ok {
					if home {
						g.HomePlayers = append(g.HomePlayers, kp)
					} else {
						g.AwayPlayers = append(g.AwayPlayers, kp)
					}
				}
			}
		}

		goals = append(goals, g)
	}
	return goals, nil
}

// findGoalkeeper picks the goalkeeper out of one side's snapshot: the
// GK position group, or a player id match against the shot's keeper.
func findGoalkeeper(players []SnapshotPlayer, keeperID int64, keeperName string) (KeyPlayer, bool) {
	for _, p := range players {
		if p.PositionGroup == "GK" || (keeperID != 0 && p.PlayerID == keeperID) {
			kp := KeyPlayer{SnapshotPlayer: p, Name: keeperName}
			kp.PositionGroup = "GK"
			return kp, true
		}
	}
	return KeyPlayer{}, false
}

func appendKeepers(g *Goal, e *Event, keeperID int64, keeperName string) {
	if kp, ok := findGoalkeeper(e.HomePlayers, keeperID, keeperName); ok {
		g.HomePlayers = append(g.HomePlayers, kp)
	}
	if kp, ok := findGoalkeeper(e.AwayPlayers, keeperID, keeperName); ok {
		g.AwayPlayers = append(g.AwayPlayers, kp)
	}
}

// snapshotFor finds a player's position in an event snapshot, either
// side.
func snapshotFor(e *Event, id int64, name string) (KeyPlayer, bool) {
	for _, p := range e.HomePlayers {
		if p.PlayerID == id {
			return KeyPlayer{SnapshotPlayer: p, Name: name}, true
		}
	}
	for _, p := range e.AwayPlayers {
		if p.PlayerID == id {
			return KeyPlayer{SnapshotPlayer: p, Name: name}, true
		}
	}
	return KeyPlayer{}, false
}

// sideSnapshotFor is snapshotFor plus which side the player was found
// on.
func sideSnapshotFor(e *Event, id int64, name string) (KeyPlayer, bool, bool) {
	for _, p := range e.HomePlayers {
		if p.PlayerID == id {
			return KeyPlayer{SnapshotPlayer: p, Name: name}, true, true
		}
	}
	for _, p := range e.AwayPlayers {
		if p.PlayerID == id {
			return KeyPlayer{SnapshotPlayer: p, Name: name}, false, true
		}
	}
	return KeyPlayer{}, false, false
}

func isHomeSnapshot(e *Event, id int64) bool {
	for _, p := range e.HomePlayers {
		if p.PlayerID == id {
			return true
		}
	}
	return false
}

func containsPlayer(list []KeyPlayer, id int64) bool {
	for _, p := range list {
		if p.PlayerID == id {
			return true
		}
	}
	return false
}
