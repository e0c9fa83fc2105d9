package match

import (
	"encoding/json"
)

// A Position is a pitch-space coordinate: meters, origin at the field
// center. Z is ball height, informational only.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// A Team is one side's identity and kit styling as recorded in the
// match metadata.
type Team struct {
	ID             string
	Name           string
	ShortName      string
	PrimaryColor   string
	SecondaryColor string
	TextColor      string
}

// A SnapshotPlayer is one player's tracked state at the moment of an
// event.
type SnapshotPlayer struct {
	PlayerID      int64   `json:"playerId"`
	JerseyNum     int     `json:"jerseyNum"`
	PositionGroup string  `json:"positionGroupType"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
}

// GameEvents is the game-level half of an event record.
type GameEvents struct {
	GameEventType  string      `json:"gameEventType"`
	StartGameClock float64     `json:"startGameClock"`
	FormattedClock string      `json:"startFormattedGameClock"`
	Period         int         `json:"period"`
	TeamID         json.Number `json:"teamId"`
	TeamName       string      `json:"teamName"`
	PlayerID       int64       `json:"playerId"`
	PlayerName     string      `json:"playerName"`
	SetpieceType   string      `json:"setpieceType"`
	EndType        string      `json:"endType"`
}

// PossessionEvents is the possession-level half of an event record.
// Which of the per-role fields are populated depends on
// PossessionEventType.
type PossessionEvents struct {
	PossessionEventType string `json:"possessionEventType"`
	NonEvent            bool   `json:"nonEvent"`

	PasserPlayerID      int64  `json:"passerPlayerId"`
	PasserPlayerName    string `json:"passerPlayerName"`
	ReceiverPlayerID    int64  `json:"receiverPlayerId"`
	ReceiverPlayerName  string `json:"receiverPlayerName"`
	TargetPlayerID      int64  `json:"targetPlayerId"`
	TargetPlayerName    string `json:"targetPlayerName"`
	ShooterPlayerID     int64  `json:"shooterPlayerId"`
	ShooterPlayerName   string `json:"shooterPlayerName"`
	KeeperPlayerID      int64  `json:"keeperPlayerId"`
	KeeperPlayerName    string `json:"keeperPlayerName"`
	CrosserPlayerID     int64  `json:"crosserPlayerId"`
	CrosserPlayerName   string `json:"crosserPlayerName"`
	ClearerPlayerID     int64  `json:"clearerPlayerId"`
	ClearerPlayerName   string `json:"clearerPlayerName"`
	HomeDuelPlayerID    int64  `json:"homeDuelPlayerId"`
	HomeDuelPlayerName  string `json:"homeDuelPlayerName"`
	AwayDuelPlayerID    int64  `json:"awayDuelPlayerId"`
	AwayDuelPlayerName  string `json:"awayDuelPlayerName"`
	TouchPlayerID       int64  `json:"touchPlayerId"`
	TouchPlayerName     string `json:"touchPlayerName"`
	BallCarrierPlayerID int64  `json:"ballCarrierPlayerId"`
	BallCarrierName     string `json:"ballCarrierPlayerName"`
	RebounderPlayerID   int64  `json:"rebounderPlayerId"`
	RebounderPlayerName string `json:"rebounderPlayerName"`

	PassType             string `json:"passType"`
	PassOutcomeType      string `json:"passOutcomeType"`
	ShotType             string `json:"shotType"`
	ShotOutcomeType      string `json:"shotOutcomeType"`
	CrossOutcomeType     string `json:"crossOutcomeType"`
	ClearanceOutcomeType string `json:"clearanceOutcomeType"`
	ChallengeOutcomeType string `json:"challengeOutcomeType"`
	PressureType         string `json:"pressureType"`
}

// An Event is one record of the match event stream.
type Event struct {
	GameEventID json.Number      `json:"gameEventId"`
	EventTime   float64          `json:"eventTime"`
	Sequence    *float64         `json:"sequence"`
	Game        GameEvents       `json:"gameEvents"`
	Possession  PossessionEvents `json:"possessionEvents"`
	Ball        []Position       `json:"ball"`
	HomePlayers []SnapshotPlayer `json:"homePlayers"`
	AwayPlayers []SnapshotPlayer `json:"awayPlayers"`
}

// Seq returns the event's possession sequence number. Events without
// one report ok=false.
func (e *Event) Seq() (int, bool) {
	if e.Sequence == nil {
		return 0, false
	}
	return int(*e.Sequence), true
}

// BallPosition returns the first ball sample of the event, or nil.
func (e *Event) BallPosition() *Position {
	if len(e.Ball) == 0 {
		return nil
	}
	p := e.Ball[0]
	return &p
}

// TeamID returns the acting team's id as a string ("" when absent).
func (e *Event) TeamID() string {
	return e.Game.TeamID.String()
}
