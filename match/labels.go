// Package match loads and interprets per-match tracking data: team
// metadata, rosters, and the possession event stream, plus the
// goal/play extraction the visualization is driven by.
package match

// EventLabels maps possession event type codes to display labels.
var EventLabels = map[string]string{
	"PA": "Pass",
	"SH": "Shot",
	"CR": "Cross",
	"CL": "Clearance",
	"CH": "Challenge",
	"TC": "Touch",
	"BC": "Ball Carry",
	"IT": "Initial Touch",
	"RE": "Rebound",
}

// SetpieceLabels maps setpiece type codes to display labels.
var SetpieceLabels = map[string]string{
	"O": "Open Play",
	"T": "Throw-in",
	"C": "Corner",
	"K": "Kickoff",
	"P": "Penalty",
	"G": "Goal Kick",
	"F": "Free Kick",
}

// EventLabel returns the display label for a possession event type
// code, or the code itself when unknown.
func EventLabel(code string) string {
	if l, ok := EventLabels[code]; ok {
		return l
	}
	return code
}

// SetpieceLabel returns the display label for a setpiece code, or ""
// when unknown.
func SetpieceLabel(code string) string {
	return SetpieceLabels[code]
}
