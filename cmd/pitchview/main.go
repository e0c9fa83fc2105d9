// Command pitchview replays the goals of a match on a 2D pitch: key
// players, buildup passes, and the shot itself, with arrow keys
// stepping between goals and a hover tooltip on the players.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/seebs/gogetopt"

	"pitchview/match"
	"pitchview/pitch"
)

const (
	screenWidth  = 1050
	screenHeight = 740
)

var timedOut <-chan time.Time

type viewer struct {
	log      zerolog.Logger
	m        *match.Match
	goals    []match.Goal
	current  int
	renderer *pitch.Renderer
	colors   map[string]color.RGBA
	dirty    bool
	tooltip  *pitch.MarkerInfo
	tipX     float32
	tipY     float32
}

func newViewer(m *match.Match, goals []match.Goal, log zerolog.Logger) *viewer {
	v := &viewer{
		log:      log,
		m:        m,
		goals:    goals,
		renderer: pitch.NewRenderer(screenWidth, screenHeight),
		colors: map[string]color.RGBA{
			m.Home.ID: pitch.ParseHex(m.Home.PrimaryColor, pitch.HomeFallback),
			m.Away.ID: pitch.ParseHex(m.Away.PrimaryColor, pitch.AwayFallback),
		},
	}
	v.showGoal(0)
	return v
}

func spots(players []match.KeyPlayer) []pitch.PlayerSpot {
	out := make([]pitch.PlayerSpot, 0, len(players))
	for _, p := range players {
		pt := pitch.Pt(float32(p.X), float32(p.Y))
		out = append(out, pitch.PlayerSpot{
			Pos:    &pt,
			Jersey: p.JerseyNum,
			Name:   p.Name,
			Group:  p.PositionGroup,
		})
	}
	return out
}

func teamStyle(t match.Team) pitch.TeamStyle {
	return pitch.TeamStyle{
		PrimaryColor: t.PrimaryColor,
		TextColor:    t.TextColor,
		ShortName:    t.ShortName,
		Name:         t.Name,
	}
}

// showGoal loads goal idx into the scene. Out-of-range indices clear
// everything but the pitch itself.
func (v *viewer) showGoal(idx int) {
	v.current = idx
	v.dirty = true
	if idx < 0 || idx >= len(v.goals) {
		v.renderer.SetPlayers(nil, nil, teamStyle(v.m.Home), teamStyle(v.m.Away))
		v.renderer.SetBall(nil)
		v.renderer.SetPassSequence(nil, v.colors)
		v.renderer.SetEventMarker("", nil)
		return
	}
	g := &v.goals[idx]

	v.renderer.SetPlayers(spots(g.HomePlayers), spots(g.AwayPlayers),
		teamStyle(v.m.Home), teamStyle(v.m.Away))

	var trail []pitch.TrailPoint
	for _, p := range g.Passes {
		if p.Ball == nil {
			continue
		}
		trail = append(trail, pitch.TrailPoint{
			Pos:    pitch.Pt(float32(p.Ball.X), float32(p.Ball.Y)),
			TeamID: p.TeamID,
		})
	}
	if g.Ball != nil {
		shot := pitch.Pt(float32(g.Ball.X), float32(g.Ball.Y))
		trail = append(trail, pitch.TrailPoint{Pos: shot, TeamID: g.TeamID})
		v.renderer.SetBall(&shot)
		v.renderer.SetEventMarker("Shot", &shot)
	} else {
		v.renderer.SetBall(nil)
		v.renderer.SetEventMarker("", nil)
	}
	v.renderer.SetPassSequence(trail, v.colors)

	v.log.Debug().Int("goal", idx).Str("scorer", g.ScorerName).
		Str("time", g.Time).Bool("penalty", g.IsPenalty).
		Int("passes", len(g.Passes)).Msg("showing goal")
}

func (v *viewer) Update() error {
	select {
	case <-timedOut:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(v.goals) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			v.showGoal((v.current + 1) % len(v.goals))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			v.showGoal((v.current + len(v.goals) - 1) % len(v.goals))
		}
	}
	cx, cy := ebiten.CursorPosition()
	v.tipX, v.tipY = float32(cx), float32(cy)
	v.tooltip = v.renderer.HitTest(v.tipX, v.tipY)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty || v.renderer.Surface() == nil {
		v.renderer.Render()
		v.dirty = false
	}
	screen.DrawImage(v.renderer.Surface(), nil)
	v.drawHeader(screen)
	if v.tooltip != nil {
		v.drawTooltip(screen, v.tooltip)
	}
}

func (v *viewer) header() string {
	if len(v.goals) == 0 {
		return fmt.Sprintf("%s vs %s: no goals", v.m.Home.Name, v.m.Away.Name)
	}
	g := &v.goals[v.current]
	team := v.m.Away.Name
	if v.m.IsHome(g.TeamID) {
		team = v.m.Home.Name
	}
	kind := ""
	if g.IsPenalty {
		kind = " (pen)"
	}
	return fmt.Sprintf("Goal %d/%d  %s  %s, %s%s",
		v.current+1, len(v.goals), g.Time, g.ScorerName, team, kind)
}

func (v *viewer) drawHeader(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 8)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, v.header(), pitch.Face(14), op)
}

func (v *viewer) drawTooltip(screen *ebiten.Image, info *pitch.MarkerInfo) {
	label := info.Name
	if label == "" {
		label = "Unknown"
	}
	line1 := fmt.Sprintf("#%d %s", info.Jersey, label)
	line2 := info.Team
	if info.Group != "" {
		line2 = info.Group + ", " + line2
	}

	face := pitch.Face(12)
	w1, _ := text.Measure(line1, face, 0)
	w2, _ := text.Measure(line2, face, 0)
	w := float32(max(w1, w2)) + 16
	h := float32(40)

	x, y := v.tipX+14, v.tipY-h-6
	sw, _ := v.renderer.Size()
	if x+w > float32(sw) {
		x = v.tipX - w - 14
	}
	if y < 0 {
		y = v.tipY + 14
	}

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0x0f, 0x17, 0x2a, 0xe6}, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{0x47, 0x55, 0x69, 0xff}, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+8, float64(y)+4)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, line1, face, op)
	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+8, float64(y)+21)
	op.ColorScale.ScaleWithColor(color.RGBA{0xcb, 0xd5, 0xe1, 0xff})
	text.Draw(screen, line2, face, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.renderer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	opts, _, err := gogetopt.GetOpt(os.Args[1:], "d:m:pvs#")
	if err != nil {
		log.Fatalf("option parsing failed: %s\n", err)
	}
	if opts.Seen("p") {
		f, err := os.Create("cpu-profile.dat")
		if err != nil {
			log.Fatalf("can't create cpu-profile.dat: %s", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if opts.Seen("s") {
		timedOut = time.After(time.Duration(opts["s"].Int) * time.Second)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if opts.Seen("v") {
		logger = logger.Level(zerolog.DebugLevel)
	}

	dataDir := "data"
	if opts.Seen("d") {
		dataDir = opts["d"].Value
	}
	repo := match.NewRepository(dataDir, logger)

	id := ""
	if opts.Seen("m") {
		id = opts["m"].Value
	} else {
		ids, err := repo.MatchIDs()
		if err != nil {
			logger.Fatal().Err(err).Msg("can't list matches")
		}
		if len(ids) == 0 {
			logger.Fatal().Str("dir", dataDir).Msg("no matches found")
		}
		id = ids[0]
	}

	m, err := repo.Match(id)
	if err != nil {
		logger.Fatal().Err(err).Str("match", id).Msg("can't load match")
	}
	goals, err := m.FindGoals()
	if err != nil {
		logger.Fatal().Err(err).Str("match", id).Msg("can't extract goals")
	}
	logger.Info().Str("match", id).
		Str("home", m.Home.Name).Str("away", m.Away.Name).
		Int("goals", len(goals)).Msg("loaded match")

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s vs %s", m.Home.Name, m.Away.Name))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newViewer(m, goals, logger)); err != nil {
		logger.Fatal().Err(err).Msg("viewer exited")
	}
}
