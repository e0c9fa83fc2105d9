package similar

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"pitchview/match"
)

// Document-frequency cutoffs for the vectorizers: terms seen in fewer
// than minDocFreq documents, or in more than maxDocShare of them,
// carry no signal and are dropped.
const (
	minDocFreq   = 2
	maxDocShare  = 0.95
	minScore     = 0.01
	maxPassToken = 10
)

// pitchZone buckets a pitch coordinate into a coarse named region,
// seven bands long and five wide.
func pitchZone(x, y float64) string {
	var xz string
	switch {
	case x < -40:
		xz = "own_box"
	case x < -25:
		xz = "def_deep"
	case x < -10:
		xz = "def"
	case x < 10:
		xz = "mid"
	case x < 25:
		xz = "att"
	case x < 40:
		xz = "att_deep"
	default:
		xz = "opp_box"
	}
	var yz string
	switch {
	case y < -20:
		yz = "left_wide"
	case y < -7:
		yz = "left"
	case y < 7:
		yz = "center"
	case y < 20:
		yz = "right"
	default:
		yz = "right_wide"
	}
	return xz + "_" + yz
}

func lengthCategory(n int) string {
	switch {
	case n <= 3:
		return "short"
	case n <= 8:
		return "medium"
	default:
		return "long"
	}
}

// zoneSet returns the sorted distinct zones a set of players occupies.
func zoneSet(players []match.SnapshotPlayer) []string {
	seen := map[string]bool{}
	for _, p := range players {
		seen[pitchZone(p.X, p.Y)] = true
	}
	zones := make([]string, 0, len(seen))
	for z := range seen {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

func nearBall(players []match.SnapshotPlayer, bx, by float64) []match.SnapshotPlayer {
	var out []match.SnapshotPlayer
	for _, p := range players {
		if euclid(p.X, p.Y, bx, by) <= nearBallRadius {
			out = append(out, p)
		}
	}
	return out
}

func setpieceToken(label string) string {
	return "setpiece_" + strings.ReplaceAll(label, " ", "_")
}

// eventTokens renders one play as TF-IDF tokens: kind and location
// carry double weight, shot outcomes and goals more, plus pass
// geometry and the near-ball picture.
func eventTokens(p *match.Play) []string {
	var tok []string

	label := p.Label
	if label != "" {
		tok = append(tok, "type_"+label, "type_"+label)
	}
	if p.SetpieceLabel != "" {
		tok = append(tok, setpieceToken(p.SetpieceLabel))
	}
	if p.Outcome != "" {
		tok = append(tok, "outcome_"+p.Outcome)
	}
	if p.Ball != nil {
		zone := pitchZone(p.Ball.X, p.Ball.Y)
		tok = append(tok, "ballzone_"+zone, "ballzone_"+zone)
	}

	if label == "Shot" {
		if p.Outcome != "" {
			t := "shot_outcome_" + p.Outcome
			tok = append(tok, t, t, t)
		}
		if p.IsGoal {
			tok = append(tok, "is_goal", "is_goal", "is_goal")
		}
	}

	if label == "Pass" {
		if p.PassType != "" {
			tok = append(tok, "passtype_"+p.PassType)
		}
		if p.SecondaryID != 0 && p.Ball != nil {
			for _, pl := range append(append([]match.SnapshotPlayer{}, p.HomePlayers...), p.AwayPlayers...) {
				if pl.PlayerID != p.SecondaryID {
					continue
				}
				tok = append(tok, "pass_to_"+pitchZone(pl.X, pl.Y))
				if pl.X > p.Ball.X+10 {
					tok = append(tok, "pass_forward")
				} else if pl.X < p.Ball.X-10 {
					tok = append(tok, "pass_backward")
				}
				break
			}
		}
	}

	if p.Ball != nil {
		nh := nearBall(p.HomePlayers, p.Ball.X, p.Ball.Y)
		na := nearBall(p.AwayPlayers, p.Ball.X, p.Ball.Y)
		for _, z := range zoneSet(nh) {
			tok = append(tok, "near_home_"+z)
		}
		for _, z := range zoneSet(na) {
			tok = append(tok, "near_away_"+z)
		}
		switch n := len(nh) + len(na); {
		case n <= 2:
			tok = append(tok, "pressure_low")
		case n <= 4:
			tok = append(tok, "pressure_medium")
		default:
			tok = append(tok, "pressure_high")
		}
	}

	return tok
}

// sequenceTokens renders a whole possession: the event kinds in
// order, its framing, where it started and ended, and whether it
// progressed up the pitch.
func sequenceTokens(plays []match.Play) []string {
	if len(plays) == 0 {
		return nil
	}
	var tok []string

	for i := range plays {
		if plays[i].Label != "" {
			tok = append(tok, "type_"+plays[i].Label)
		}
	}
	if sp := plays[0].SetpieceLabel; sp != "" {
		tok = append(tok, setpieceToken(sp), setpieceToken(sp))
	}
	tok = append(tok, "length_"+lengthCategory(len(plays)))

	first, last := plays[0].Ball, plays[len(plays)-1].Ball
	if first != nil {
		tok = append(tok, "start_"+pitchZone(first.X, first.Y))
	}
	if last != nil {
		tok = append(tok, "end_"+pitchZone(last.X, last.Y))
	}
	if first != nil && last != nil {
		switch dx := last.X - first.X; {
		case dx > 20:
			tok = append(tok, "progression_forward_strong")
		case dx > 5:
			tok = append(tok, "progression_forward")
		case dx < -20:
			tok = append(tok, "progression_backward_strong")
		case dx < -5:
			tok = append(tok, "progression_backward")
		default:
			tok = append(tok, "progression_lateral")
		}
	}

	passes := 0
	hasShot, hasGoal := false, false
	for i := range plays {
		switch plays[i].EventType {
		case "PA":
			passes++
		case "SH":
			hasShot = true
		}
		if plays[i].IsGoal {
			hasGoal = true
		}
	}
	if passes > 0 {
		if passes > maxPassToken {
			passes = maxPassToken
		}
		tok = append(tok, fmt.Sprintf("passes_%d", passes))
	}
	if hasShot {
		tok = append(tok, "has_shot", "has_shot")
	}
	if hasGoal {
		tok = append(tok, "has_goal", "has_goal", "has_goal")
	}

	return tok
}

// A vectorizer holds the inverse document frequencies fitted over a
// token corpus and converts documents to L2-normalized sparse
// vectors.
type vectorizer struct {
	idf map[string]float64
}

// fitVectorizer computes smoothed idf values over the corpus and
// applies the document-frequency cutoffs.
func fitVectorizer(docs [][]string) *vectorizer {
	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]bool{}
		for _, t := range doc {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}
	n := len(docs)
	idf := map[string]float64{}
	for t, c := range df {
		if c < minDocFreq || float64(c) > maxDocShare*float64(n) {
			continue
		}
		idf[t] = math.Log(float64(1+n)/float64(1+c)) + 1
	}
	return &vectorizer{idf: idf}
}

// vector converts a document to its normalized tf-idf vector. Terms
// outside the fitted vocabulary drop out.
func (v *vectorizer) vector(doc []string) map[string]float64 {
	tf := map[string]float64{}
	for _, t := range doc {
		if _, ok := v.idf[t]; ok {
			tf[t]++
		}
	}
	norm := 0.0
	for t := range tf {
		tf[t] *= v.idf[t]
		norm += tf[t] * tf[t]
	}
	if norm == 0 {
		return tf
	}
	norm = math.Sqrt(norm)
	for t := range tf {
		tf[t] /= norm
	}
	return tf
}

// cosine of two normalized sparse vectors is their dot product.
func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for t, av := range a {
		dot += av * b[t]
	}
	return dot
}
