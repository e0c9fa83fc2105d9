// Package similar ranks possessions by likeness. Two measures are
// combined: a dynamic time warping distance over ball trajectories,
// event kinds, and near-ball formations, and a TF-IDF cosine
// similarity over token renderings of the same plays. The Index
// precomputes features for a whole repository and answers top-N
// queries against it.
package similar

import (
	"math"

	"pitchview/match"
)

// nearBallRadius bounds which players count toward a formation, in
// meters from the ball. maxDistance caps the per-event distance used
// when normalizing into a 0..1 similarity.
const (
	nearBallRadius = 15
	maxDistance    = 150

	// DefaultTopN is the result count used when a query passes 0.
	DefaultTopN = 10
)

// Weights scales the terms of the per-event distance.
type Weights struct {
	BallPosition float64
	EventType    float64
	Formation    float64
	PassType     float64
	ShotType     float64
	PressureType float64
}

// DefaultWeights weights the core terms equally and the optional
// type terms below them.
func DefaultWeights() Weights {
	return Weights{
		BallPosition: 1.0,
		EventType:    1.0,
		Formation:    1.0,
		PassType:     0.5,
		ShotType:     0.5,
		PressureType: 0.3,
	}
}

// A Config selects the optional distance terms. The zero value is the
// stock behavior: ball position, event type, and formation only, at
// the default weights.
type Config struct {
	Weights         Weights
	UsePassType     bool
	UseShotType     bool
	UsePressureType bool
}

func (c Config) weights() Weights {
	if c.Weights == (Weights{}) {
		return DefaultWeights()
	}
	return c.Weights
}

// eventGroups clusters event type codes; codes sharing a group are
// nearer than codes that don't.
var eventGroups = map[string][]string{
	"passing":   {"PA", "CR", "FK", "CK", "TI", "GK"},
	"shooting":  {"SH", "PK"},
	"control":   {"IT", "RE", "TO", "CA"},
	"dribbling": {"DR", "CA"},
	"defensive": {"CL", "RE"},
}

func groupsOf(code string) map[string]bool {
	out := map[string]bool{}
	for name, codes := range eventGroups {
		for _, c := range codes {
			if c == code {
				out[name] = true
			}
		}
	}
	if len(out) == 0 {
		out["other"] = true
	}
	return out
}

// eventTypePenalty grades how unlike two event type codes are: 0 for
// identical, 2 within a group, 10 for shot-versus-defense, 5
// otherwise (including unknowns).
func eventTypePenalty(a, b string) float64 {
	if a == b {
		return 0
	}
	if a == "" || b == "" {
		return 5
	}
	ga, gb := groupsOf(a), groupsOf(b)
	for name := range ga {
		if gb[name] {
			return 2
		}
	}
	if (ga["shooting"] && gb["defensive"]) || (ga["defensive"] && gb["shooting"]) {
		return 10
	}
	return 5
}

// passTypePenalty treats short-versus-long as the widest gap.
func passTypePenalty(a, b string) float64 {
	if a == b {
		return 0
	}
	if a == "" || b == "" {
		return 2
	}
	if (a == "S" && b == "L") || (a == "L" && b == "S") {
		return 3
	}
	return 1.5
}

func shotTypePenalty(a, b string) float64 {
	if a == b {
		return 0
	}
	return 2
}

// pressureTypePenalty treats none-versus-active as the widest gap.
func pressureTypePenalty(a, b string) float64 {
	if a == b {
		return 0
	}
	if a == "" || b == "" {
		return 1
	}
	if (a == "N" && b == "A") || (a == "A" && b == "N") {
		return 3
	}
	return 1.5
}

func euclid(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// eventFeatures is the precomputed comparison state for one play.
type eventFeatures struct {
	ballX, ballY float64
	hasBall      bool
	eventType    string
	near         [][2]float64
	passType     string
	shotType     string
	pressureType string
}

// featuresOf extracts the DTW features from a play. A play without a
// ball sample compares from the field center.
func featuresOf(p *match.Play) eventFeatures {
	f := eventFeatures{
		eventType:    p.EventType,
		passType:     p.PassType,
		shotType:     p.ShotType,
		pressureType: p.PressureType,
	}
	if p.Ball != nil {
		f.ballX, f.ballY = p.Ball.X, p.Ball.Y
		f.hasBall = true
	}
	for _, side := range [][]match.SnapshotPlayer{p.HomePlayers, p.AwayPlayers} {
		for _, pl := range side {
			if euclid(pl.X, pl.Y, f.ballX, f.ballY) <= nearBallRadius {
				f.near = append(f.near, [2]float64{pl.X, pl.Y})
			}
		}
	}
	return f
}

func featuresOfAll(plays []match.Play) []eventFeatures {
	out := make([]eventFeatures, len(plays))
	for i := range plays {
		out[i] = featuresOf(&plays[i])
	}
	return out
}

func nearestAvg(src, dst [][2]float64) float64 {
	total := 0.0
	for _, s := range src {
		best := math.Inf(1)
		for _, d := range dst {
			best = math.Min(best, euclid(s[0], s[1], d[0], d[1]))
		}
		total += best
	}
	return total / float64(len(src))
}

// formationDistance is the symmetric average nearest-neighbor
// distance between two near-ball formations. Two empty formations
// match exactly; one empty formation carries a flat penalty.
func formationDistance(a, b [][2]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		if len(a) == 0 && len(b) == 0 {
			return 0
		}
		return 10
	}
	return (nearestAvg(a, b) + nearestAvg(b, a)) / 2
}

// eventDistance totals the weighted feature distances between two
// plays.
func eventDistance(a, b eventFeatures, cfg Config) float64 {
	w := cfg.weights()
	d := w.BallPosition * euclid(a.ballX, a.ballY, b.ballX, b.ballY)
	d += w.EventType * eventTypePenalty(a.eventType, b.eventType)
	d += w.Formation * formationDistance(a.near, b.near)
	if cfg.UsePassType {
		d += w.PassType * passTypePenalty(a.passType, b.passType)
	}
	if cfg.UseShotType {
		d += w.ShotType * shotTypePenalty(a.shotType, b.shotType)
	}
	if cfg.UsePressureType {
		d += w.PressureType * pressureTypePenalty(a.pressureType, b.pressureType)
	}
	return d
}

// dtwDistance aligns two feature sequences with the classic full
// dynamic programming matrix and returns the alignment cost and
// path. Possessions run a handful of events, so the exact O(n*m)
// form is used; an empty side yields an infinite distance.
func dtwDistance(a, b []eventFeatures, cfg Config) (float64, [][2]int) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return math.Inf(1), nil
	}

	cost := make([][]float64, n+1)
	for i := range cost {
		cost[i] = make([]float64, m+1)
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
		}
	}
	cost[0][0] = 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			d := eventDistance(a[i-1], b[j-1], cfg)
			cost[i][j] = d + math.Min(cost[i-1][j-1], math.Min(cost[i-1][j], cost[i][j-1]))
		}
	}

	// walk the matrix back to recover the alignment
	var rev [][2]int
	i, j := n, m
	for i > 0 && j > 0 {
		rev = append(rev, [2]int{i - 1, j - 1})
		diag, up, left := cost[i-1][j-1], cost[i-1][j], cost[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	path := make([][2]int, len(rev))
	for k := range rev {
		path[k] = rev[len(rev)-1-k]
	}
	return cost[n][m], path
}

// similarityFrom normalizes a DTW distance by the longer sequence
// length into a 0..1 score, 1 meaning identical.
func similarityFrom(distance float64, lenA, lenB int) float64 {
	n := lenA
	if lenB > n {
		n = lenB
	}
	if n > 0 {
		distance /= float64(n)
	}
	return math.Max(0, 1-distance/maxDistance)
}
