package similar

import (
	"math"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchview/match"
)

func pos(x, y float64) *match.Position {
	return &match.Position{X: x, Y: y}
}

func passPlay(x, y float64) match.Play {
	return match.Play{
		EventType: "PA",
		Label:     "Pass",
		Ball:      pos(x, y),
	}
}

func shotPlay(x, y float64, goal bool) match.Play {
	p := match.Play{
		EventType: "SH",
		Label:     "Shot",
		Ball:      pos(x, y),
		Outcome:   "S",
	}
	if goal {
		p.Outcome = "G"
		p.IsGoal = true
	}
	return p
}

func TestPitchZones(t *testing.T) {
	assert.Equal(t, "own_box_center", pitchZone(-45, 0))
	assert.Equal(t, "mid_center", pitchZone(0, 0))
	assert.Equal(t, "opp_box_right_wide", pitchZone(48, 30))
	assert.Equal(t, "att_left", pitchZone(12, -10))
	// band edges fall on the higher side
	assert.Equal(t, "def_deep_center", pitchZone(-40, 0))
	assert.Equal(t, "att_deep_right", pitchZone(25, 7))
}

func TestLengthCategory(t *testing.T) {
	assert.Equal(t, "short", lengthCategory(1))
	assert.Equal(t, "short", lengthCategory(3))
	assert.Equal(t, "medium", lengthCategory(4))
	assert.Equal(t, "medium", lengthCategory(8))
	assert.Equal(t, "long", lengthCategory(9))
}

func TestEventTypePenalty(t *testing.T) {
	assert.Equal(t, 0.0, eventTypePenalty("PA", "PA"))
	assert.Equal(t, 2.0, eventTypePenalty("PA", "CR"))
	assert.Equal(t, 10.0, eventTypePenalty("SH", "CL"))
	assert.Equal(t, 10.0, eventTypePenalty("CL", "SH"))
	assert.Equal(t, 5.0, eventTypePenalty("PA", "SH"))
	assert.Equal(t, 5.0, eventTypePenalty("", "PA"))
	assert.Equal(t, 5.0, eventTypePenalty("XX", "YY"))
}

func TestPassAndPressurePenalties(t *testing.T) {
	assert.Equal(t, 0.0, passTypePenalty("S", "S"))
	assert.Equal(t, 3.0, passTypePenalty("S", "L"))
	assert.Equal(t, 2.0, passTypePenalty("", "S"))
	assert.Equal(t, 1.5, passTypePenalty("S", "M"))

	assert.Equal(t, 3.0, pressureTypePenalty("N", "A"))
	assert.Equal(t, 1.0, pressureTypePenalty("", "A"))
	assert.Equal(t, 1.5, pressureTypePenalty("A", "P"))
}

func TestFormationDistance(t *testing.T) {
	assert.Equal(t, 0.0, formationDistance(nil, nil))
	assert.Equal(t, 10.0, formationDistance([][2]float64{{0, 0}}, nil))
	assert.Equal(t, 10.0, formationDistance(nil, [][2]float64{{0, 0}}))

	a := [][2]float64{{0, 0}, {10, 0}}
	assert.Equal(t, 0.0, formationDistance(a, a))

	// each point's nearest neighbor is 3 away in both directions
	b := [][2]float64{{3, 0}, {13, 0}}
	assert.InDelta(t, 3.0, formationDistance(a, b), 1e-9)
}

func TestFeaturesOfNearBall(t *testing.T) {
	p := match.Play{
		EventType: "PA",
		Ball:      pos(10, 0),
		HomePlayers: []match.SnapshotPlayer{
			{PlayerID: 1, X: 12, Y: 3},
			{PlayerID: 2, X: 60, Y: 0},
		},
		AwayPlayers: []match.SnapshotPlayer{
			{PlayerID: 3, X: 10, Y: -14},
		},
	}
	f := featuresOf(&p)
	assert.True(t, f.hasBall)
	assert.Equal(t, 10.0, f.ballX)
	assert.Equal(t, [][2]float64{{12, 3}, {10, -14}}, f.near)

	noBall := match.Play{EventType: "SH"}
	nf := featuresOf(&noBall)
	assert.False(t, nf.hasBall)
	assert.Zero(t, nf.ballX)
}

func TestDTWIdenticalSequences(t *testing.T) {
	seq := featuresOfAll([]match.Play{
		passPlay(-20, 0),
		passPlay(0, 10),
		shotPlay(40, 2, true),
	})
	d, path := dtwDistance(seq, seq, Config{})
	assert.Equal(t, 0.0, d)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}}, path)
	assert.Equal(t, 1.0, similarityFrom(d, 3, 3))
}

func TestDTWEmptySequence(t *testing.T) {
	seq := featuresOfAll([]match.Play{passPlay(0, 0)})
	d, path := dtwDistance(seq, nil, Config{})
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, path)
}

func TestDTWPrefersNearerTrajectory(t *testing.T) {
	query := featuresOfAll([]match.Play{passPlay(-20, 0), passPlay(20, 0)})
	near := featuresOfAll([]match.Play{passPlay(-18, 1), passPlay(22, -1)})
	far := featuresOfAll([]match.Play{passPlay(-20, 30), passPlay(-40, -30)})

	dn, _ := dtwDistance(query, near, Config{})
	df, _ := dtwDistance(query, far, Config{})
	assert.Less(t, dn, df)
}

func TestSimilarityBounds(t *testing.T) {
	assert.Equal(t, 1.0, similarityFrom(0, 5, 5))
	assert.Equal(t, 0.0, similarityFrom(1e9, 5, 5))
	assert.InDelta(t, 0.8, similarityFrom(60, 2, 2), 1e-9)
}

func TestEventTokens(t *testing.T) {
	p := shotPlay(44, 0, true)
	p.SetpieceLabel = "Penalty"
	tok := eventTokens(&p)
	assert.Equal(t, 2, count(tok, "type_Shot"))
	assert.Equal(t, 2, count(tok, "ballzone_opp_box_center"))
	assert.Equal(t, 3, count(tok, "shot_outcome_G"))
	assert.Equal(t, 3, count(tok, "is_goal"))
	assert.Equal(t, 1, count(tok, "setpiece_Penalty"))
}

func TestEventTokensPassGeometry(t *testing.T) {
	p := passPlay(0, 0)
	p.SecondaryID = 9
	p.HomePlayers = []match.SnapshotPlayer{{PlayerID: 9, X: 30, Y: 5}}
	tok := eventTokens(&p)
	assert.Contains(t, tok, "pass_to_att_deep_center")
	assert.Contains(t, tok, "pass_forward")
	assert.NotContains(t, tok, "pass_backward")
	assert.Contains(t, tok, "pressure_low")
}

func TestSequenceTokens(t *testing.T) {
	plays := []match.Play{
		passPlay(-30, 0),
		passPlay(0, 5),
		passPlay(20, -5),
		shotPlay(42, 0, true),
	}
	plays[0].SetpieceLabel = "Corner"
	tok := sequenceTokens(plays)
	assert.Equal(t, 3, count(tok, "type_Pass"))
	assert.Equal(t, 2, count(tok, "setpiece_Corner"))
	assert.Contains(t, tok, "length_medium")
	assert.Contains(t, tok, "start_def_deep_center")
	assert.Contains(t, tok, "end_opp_box_center")
	assert.Contains(t, tok, "progression_forward_strong")
	assert.Contains(t, tok, "passes_3")
	assert.Equal(t, 2, count(tok, "has_shot"))
	assert.Equal(t, 3, count(tok, "has_goal"))

	assert.Nil(t, sequenceTokens(nil))
}

func count(tokens []string, want string) int {
	n := 0
	for _, t := range tokens {
		if t == want {
			n++
		}
	}
	return n
}

func TestVectorizerCutoffs(t *testing.T) {
	docs := [][]string{
		{"common", "rare"},
		{"common", "shared"},
		{"common", "shared"},
	}
	v := fitVectorizer(docs)
	// "rare" appears once, below the frequency floor
	assert.NotContains(t, v.idf, "rare")
	// "common" appears in every document, above the ceiling
	assert.NotContains(t, v.idf, "common")
	assert.Contains(t, v.idf, "shared")
}

func TestVectorCosine(t *testing.T) {
	docs := [][]string{
		{"a", "b"},
		{"a", "b"},
		{"c", "d"},
		{"c", "d"},
	}
	v := fitVectorizer(docs)

	ab := v.vector([]string{"a", "b"})
	assert.InDelta(t, 1.0, cosine(ab, v.vector([]string{"a", "b"})), 1e-9)
	assert.Equal(t, 0.0, cosine(ab, v.vector([]string{"c", "d"})))

	// vectors are unit length
	norm := 0.0
	for _, x := range ab {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

// fixtureIndex builds an index straight from constructed entries,
// bypassing the repository loader.
func fixtureIndex(t *testing.T, seqs map[int][]match.Play) *Index {
	t.Helper()
	ix := &Index{log: zerolog.Nop(), cfg: Config{}}
	var seqDocs, eventDocs [][]string
	ids := make([]int, 0, len(seqs))
	for id := range seqs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		plays := seqs[id]
		ref := SequenceRef{MatchID: "fixture", SequenceID: id}
		ix.sequences = append(ix.sequences, seqEntry{
			ref:      ref,
			seq:      match.PlaySequence{ID: id, Events: plays},
			features: featuresOfAll(plays),
		})
		seqDocs = append(seqDocs, sequenceTokens(plays))
		for k := range plays {
			ix.events = append(ix.events, eventEntry{ref: ref, eventIndex: k, play: plays[k]})
			eventDocs = append(eventDocs, eventTokens(&plays[k]))
		}
	}
	ix.seqVec = fitVectorizer(seqDocs)
	ix.eventVec = fitVectorizer(eventDocs)
	for i := range ix.sequences {
		ix.sequences[i].vec = ix.seqVec.vector(seqDocs[i])
	}
	for i := range ix.events {
		ix.events[i].vec = ix.eventVec.vector(eventDocs[i])
	}
	return ix
}

func fixtureSequences() map[int][]match.Play {
	attack := []match.Play{passPlay(-20, 0), passPlay(10, 5), shotPlay(42, 0, true)}
	attackTwin := []match.Play{passPlay(-22, 2), passPlay(12, 4), shotPlay(40, 1, false)}
	buildOut := []match.Play{passPlay(-45, 10), passPlay(-40, -10), passPlay(-30, 0)}
	return map[int][]match.Play{
		1: attack,
		2: attackTwin,
		3: buildOut,
	}
}

func TestSimilarSequencesDTW(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	self := SequenceRef{MatchID: "fixture", SequenceID: 1}

	got := ix.SimilarSequencesDTW(fixtureSequences()[1], &self, 0)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].SequenceID)
	assert.Equal(t, 3, got[1].SequenceID)
	assert.Less(t, got[0].Distance, got[1].Distance)
	assert.Greater(t, got[0].Similarity, got[1].Similarity)
	assert.Len(t, got[0].Alignment, 3)
}

func TestSimilarSequencesDTWExcludesSelf(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	self := SequenceRef{MatchID: "fixture", SequenceID: 1}
	for _, m := range ix.SimilarSequencesDTW(fixtureSequences()[1], &self, 0) {
		assert.NotEqual(t, self, m.SequenceRef)
	}
}

func TestSimilarSequencesTFIDF(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	self := SequenceRef{MatchID: "fixture", SequenceID: 1}

	got := ix.SimilarSequencesTFIDF(fixtureSequences()[1], &self, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, 2, got[0].SequenceID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Similarity, got[i].Similarity)
	}
	for _, m := range got {
		assert.GreaterOrEqual(t, m.Similarity, minScore)
	}
}

func TestSimilarSequencesHybridBlend(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	self := SequenceRef{MatchID: "fixture", SequenceID: 1}

	got := ix.SimilarSequences(fixtureSequences()[1], &self, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, 2, got[0].SequenceID)
	for _, m := range got {
		want := hybridWeightDTW*m.DTWSimilarity + hybridWeightTFIDF*m.TFIDFSimilarity
		assert.InDelta(t, want, m.Similarity, 1e-9)
	}
}

func TestSimilarSequencesTopN(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	got := ix.SimilarSequencesDTW(fixtureSequences()[1], nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].SequenceID)
	assert.Equal(t, 0.0, got[0].Distance)
}

func TestSimilarEvents(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	query := shotPlay(42, 0, true)
	self := SequenceRef{MatchID: "fixture", SequenceID: 1}

	got := ix.SimilarEvents(&query, &self, 2, 0)
	require.NotEmpty(t, got)
	// the twin attack's shot outranks any pass
	assert.Equal(t, 2, got[0].SequenceID)
	assert.Equal(t, "SH", got[0].Play.EventType)
	for _, m := range got {
		if m.SequenceRef == self {
			assert.NotEqual(t, 2, m.EventIndex)
		}
	}
}

func TestSequenceLookup(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	s, ok := ix.Sequence(SequenceRef{MatchID: "fixture", SequenceID: 3})
	require.True(t, ok)
	assert.Len(t, s.Events, 3)
	_, ok = ix.Sequence(SequenceRef{MatchID: "fixture", SequenceID: 99})
	assert.False(t, ok)
}

func TestSimilarEmptyQuery(t *testing.T) {
	ix := fixtureIndex(t, fixtureSequences())
	assert.Nil(t, ix.SimilarSequencesDTW(nil, nil, 0))
	assert.Nil(t, ix.SimilarSequencesTFIDF(nil, nil, 0))
	assert.Empty(t, ix.SimilarSequences(nil, nil, 0))
}
