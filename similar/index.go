package similar

import (
	"sort"

	"github.com/rs/zerolog"

	"pitchview/match"
)

// hybrid blend: the DTW side weighs spatial/temporal shape, the
// TF-IDF side weighs what kind of play it was. A result scored by
// only one side keeps the other at zero, so consensus wins.
const (
	hybridWeightDTW   = 0.6
	hybridWeightTFIDF = 0.4
	hybridInternalN   = 50
)

// A SequenceRef identifies one possession across the indexed
// repository.
type SequenceRef struct {
	MatchID    string
	SequenceID int
}

// A SequenceMatch is one ranked result of a sequence search.
type SequenceMatch struct {
	SequenceRef
	Setpiece   string
	TeamID     string
	Time       string
	EventCount int
	Events     []match.Play

	// Similarity is in 0..1, 1 meaning identical. Distance and
	// Alignment are filled by the DTW side; the per-measure scores
	// by the hybrid blend.
	Similarity      float64
	Distance        float64
	Alignment       [][2]int
	DTWSimilarity   float64
	TFIDFSimilarity float64
}

// An EventMatch is one ranked result of a single-play search.
type EventMatch struct {
	SequenceRef
	EventIndex int
	Play       match.Play
	Similarity float64
}

type seqEntry struct {
	ref      SequenceRef
	seq      match.PlaySequence
	features []eventFeatures
	vec      map[string]float64
}

type eventEntry struct {
	ref        SequenceRef
	eventIndex int
	play       match.Play
	vec        map[string]float64
}

// An Index holds precomputed similarity state for every possession of
// a repository. Build it once; queries only read it.
type Index struct {
	log       zerolog.Logger
	cfg       Config
	sequences []seqEntry
	events    []eventEntry
	seqVec    *vectorizer
	eventVec  *vectorizer
}

// NewIndex loads every match of the repository and precomputes DTW
// features and TF-IDF vectors for all possessions.
func NewIndex(repo *match.Repository, cfg Config, log zerolog.Logger) (*Index, error) {
	ix := &Index{log: log.With().Str("component", "similarity-index").Logger(), cfg: cfg}

	ids, err := repo.MatchIDs()
	if err != nil {
		return nil, err
	}

	var seqDocs, eventDocs [][]string
	for _, id := range ids {
		m, err := repo.Match(id)
		if err != nil {
			return nil, err
		}
		seqs, err := m.PlaySequences()
		if err != nil {
			return nil, err
		}
		for _, s := range seqs {
			ref := SequenceRef{MatchID: id, SequenceID: s.ID}
			ix.sequences = append(ix.sequences, seqEntry{
				ref:      ref,
				seq:      s,
				features: featuresOfAll(s.Events),
			})
			seqDocs = append(seqDocs, sequenceTokens(s.Events))
			for i := range s.Events {
				ix.events = append(ix.events, eventEntry{
					ref:        ref,
					eventIndex: i,
					play:       s.Events[i],
				})
				eventDocs = append(eventDocs, eventTokens(&s.Events[i]))
			}
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

	ix.log.Info().Int("matches", len(ids)).
		Int("sequences", len(ix.sequences)).
		Int("events", len(ix.events)).
		Msg("similarity index built")
	return ix, nil
}

// Sequence returns an indexed possession by reference.
func (ix *Index) Sequence(ref SequenceRef) (match.PlaySequence, bool) {
	for i := range ix.sequences {
		if ix.sequences[i].ref == ref {
			return ix.sequences[i].seq, true
		}
	}
	return match.PlaySequence{}, false
}

func (e *seqEntry) result() SequenceMatch {
	return SequenceMatch{
		SequenceRef: e.ref,
		Setpiece:    e.seq.Setpiece,
		TeamID:      e.seq.TeamID,
		Time:        e.seq.Time,
		EventCount:  len(e.seq.Events),
		Events:      e.seq.Events,
	}
}

func topN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return n
}

func excluded(ref SequenceRef, exclude *SequenceRef) bool {
	return exclude != nil && ref == *exclude
}

// SimilarSequencesDTW ranks indexed possessions against the query by
// warped trajectory distance, nearest first. The possession named by
// exclude (normally the query itself) is skipped.
func (ix *Index) SimilarSequencesDTW(query []match.Play, exclude *SequenceRef, n int) []SequenceMatch {
	if len(query) == 0 {
		return nil
	}
	qf := featuresOfAll(query)

	var out []SequenceMatch
	for i := range ix.sequences {
		e := &ix.sequences[i]
		if excluded(e.ref, exclude) {
			continue
		}
		d, path := dtwDistance(qf, e.features, ix.cfg)
		r := e.result()
		r.Distance = d
		r.Alignment = path
		r.Similarity = similarityFrom(d, len(qf), len(e.features))
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > topN(n) {
		out = out[:topN(n)]
	}
	return out
}

// SimilarSequencesTFIDF ranks indexed possessions against the query
// by cosine similarity of their token renderings. Scores below the
// noise floor are dropped.
func (ix *Index) SimilarSequencesTFIDF(query []match.Play, exclude *SequenceRef, n int) []SequenceMatch {
	if len(query) == 0 {
		return nil
	}
	qv := ix.seqVec.vector(sequenceTokens(query))

	var out []SequenceMatch
	for i := range ix.sequences {
		e := &ix.sequences[i]
		if excluded(e.ref, exclude) {
			continue
		}
		score := cosine(qv, e.vec)
		if score < minScore {
			continue
		}
		r := e.result()
		r.Similarity = score
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > topN(n) {
		out = out[:topN(n)]
	}
	return out
}

// SimilarSequences blends both measures: each side contributes its
// top candidates, scores merge as 0.6*dtw + 0.4*tfidf with a missing
// side counting zero, and the blend is ranked descending.
func (ix *Index) SimilarSequences(query []match.Play, exclude *SequenceRef, n int) []SequenceMatch {
	dtw := ix.SimilarSequencesDTW(query, exclude, hybridInternalN)
	tfidf := ix.SimilarSequencesTFIDF(query, exclude, hybridInternalN)

	dtwBy := map[SequenceRef]*SequenceMatch{}
	for i := range dtw {
		dtwBy[dtw[i].SequenceRef] = &dtw[i]
	}
	tfidfBy := map[SequenceRef]*SequenceMatch{}
	for i := range tfidf {
		tfidfBy[tfidf[i].SequenceRef] = &tfidf[i]
	}

	seen := map[SequenceRef]bool{}
	var out []SequenceMatch
	for _, side := range [][]SequenceMatch{dtw, tfidf} {
		for i := range side {
			ref := side[i].SequenceRef
			if seen[ref] {
				continue
			}
			seen[ref] = true

			var ds, ts float64
			base := tfidfBy[ref]
			if d := dtwBy[ref]; d != nil {
				ds = d.Similarity
				base = d
			}
			if t := tfidfBy[ref]; t != nil {
				ts = t.Similarity
			}

			r := *base
			r.DTWSimilarity = ds
			r.TFIDFSimilarity = ts
			r.Similarity = hybridWeightDTW*ds + hybridWeightTFIDF*ts
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > topN(n) {
		out = out[:topN(n)]
	}
	return out
}

// SimilarEvents ranks indexed single plays against the query play by
// token cosine similarity. exclude names the query's own position so
// it doesn't match itself.
func (ix *Index) SimilarEvents(query *match.Play, exclude *SequenceRef, excludeIdx int, n int) []EventMatch {
	qv := ix.eventVec.vector(eventTokens(query))

	var out []EventMatch
	for i := range ix.events {
		e := &ix.events[i]
		if excluded(e.ref, exclude) && e.eventIndex == excludeIdx {
			continue
		}
		score := cosine(qv, e.vec)
		if score < minScore {
			continue
		}
		out = append(out, EventMatch{
			SequenceRef: e.ref,
			EventIndex:  e.eventIndex,
			Play:        e.play,
			Similarity:  score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > topN(n) {
		out = out[:topN(n)]
	}
	return out
}
