// Command matchlog dumps a match's extracted goals and possession
// sequences as text, without opening a window. Useful for checking a
// data directory before pointing pitchview at it. With -q it ranks
// the other possessions in the directory by likeness to one
// possession of the chosen match.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/seebs/gogetopt"

	"pitchview/match"
	"pitchview/similar"
)

func main() {
	opts, _, err := gogetopt.GetOpt(os.Args[1:], "d:m:n#q#alv")
	if err != nil {
		log.Fatalf("option parsing failed: %s\n", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if opts.Seen("v") {
		logger = logger.Level(zerolog.DebugLevel)
	}

	dataDir := "data"
	if opts.Seen("d") {
		dataDir = opts["d"].Value
	}
	repo := match.NewRepository(dataDir, logger)

	ids, err := repo.MatchIDs()
	if err != nil {
		logger.Fatal().Err(err).Msg("can't list matches")
	}
	if opts.Seen("l") {
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	id := ""
	if opts.Seen("m") {
		id = opts["m"].Value
	} else if len(ids) > 0 {
		id = ids[0]
	} else {
		logger.Fatal().Str("dir", dataDir).Msg("no matches found")
	}

	m, err := repo.Match(id)
	if err != nil {
		logger.Fatal().Err(err).Str("match", id).Msg("can't load match")
	}
	fmt.Printf("%s: %s vs %s (%s)\n", m.ID, m.Home.Name, m.Away.Name, m.Date)

	if opts.Seen("q") {
		n := similar.DefaultTopN
		if opts.Seen("n") {
			n = opts["n"].Int
		}
		if err := printSimilar(repo, logger, id, opts["q"].Int, n); err != nil {
			logger.Fatal().Err(err).Msg("similarity search failed")
		}
		return
	}

	goals, err := m.FindGoals()
	if err != nil {
		logger.Fatal().Err(err).Msg("can't extract goals")
	}
	for i, g := range goals {
		team := m.Away.ShortName
		if m.IsHome(g.TeamID) {
			team = m.Home.ShortName
		}
		kind := ""
		if g.IsPenalty {
			kind = " (pen)"
		}
		fmt.Printf("goal %d: %s %s %s%s, %d buildup passes\n",
			i+1, g.Time, team, g.ScorerName, kind, len(g.Passes))
		for _, p := range g.Passes {
			fmt.Printf("    %s  %s -> %s\n", p.Time, p.PasserName, p.ReceiverName)
		}
	}

	if !opts.Seen("a") {
		return
	}
	printSequences(m, logger)
}

func printSequences(m *match.Match, logger zerolog.Logger) {
	seqs, err := m.PlaySequences()
	if err != nil {
		logger.Fatal().Err(err).Msg("can't extract plays")
	}
	for _, s := range seqs {
		fmt.Printf("sequence %d (%s, %s):\n", s.ID, s.Setpiece, s.Time)
		for _, p := range s.Events {
			line := fmt.Sprintf("    %s  %-13s %s", p.Time, p.Label, p.PlayerName)
			if p.SecondaryName != "" {
				line += " -> " + p.SecondaryName
			}
			if p.IsGoal {
				line += "  GOAL"
			}
			fmt.Println(line)
		}
	}
}

// printSimilar indexes every possession under the data directory and
// prints the n nearest to sequence seqID of match id.
func printSimilar(repo *match.Repository, logger zerolog.Logger, id string, seqID, n int) error {
	ix, err := similar.NewIndex(repo, similar.Config{}, logger)
	if err != nil {
		return err
	}
	ref := similar.SequenceRef{MatchID: id, SequenceID: seqID}
	query, ok := ix.Sequence(ref)
	if !ok {
		return fmt.Errorf("match %s has no sequence %d", id, seqID)
	}

	fmt.Printf("sequences similar to %d (%s, %s, %d events):\n",
		seqID, query.Setpiece, query.Time, len(query.Events))
	for i, s := range ix.SimilarSequences(query.Events, &ref, n) {
		fmt.Printf("%2d. %s seq %-4d %-12s %s  %d events  score %.3f (dtw %.3f, tfidf %.3f)\n",
			i+1, s.MatchID, s.SequenceID, s.Setpiece, s.Time,
			s.EventCount, s.Similarity, s.DTWSimilarity, s.TFIDFSimilarity)
	}
	return nil
}
