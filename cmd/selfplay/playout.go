package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"onitama/internal/onitama"
)

type outcome struct {
	winner   onitama.Side
	plies    int
	captures int
	stuck    bool
	final    string
}

// playout 随机合法走子直到吃王、无棋可走或到达步数上限；每一步后校验棋盘不变量
func playout(rules onitama.Rules, seed uint64, maxPlies int) (outcome, error) {
	rng := onitama.NewSeededSource(seed)
	b, err := onitama.NewBoard(rules, rng)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{winner: onitama.NoSide}
	for out.plies < maxPlies {
		if w, won := b.GameWon(); won {
			out.winner = w
			break
		}
		legal := b.LegalMoves()
		if len(legal) == 0 {
			out.stuck = true
			break
		}
		sm := legal[rng.IntN(len(legal))]
		side := b.SideToMove()
		res, err := b.PlayMove(sm.Move, sm.Slot)
		if err != nil {
			return out, fmt.Errorf("seed %d ply %d: %w", seed, out.plies, err)
		}
		if b.SideToMove() != onitama.Opponent(side) {
			return out, fmt.Errorf("seed %d ply %d: side to move did not flip", seed, out.plies)
		}
		if err := b.CheckInvariants(); err != nil {
			return out, fmt.Errorf("seed %d ply %d: %w", seed, out.plies, err)
		}
		if res.Captured != nil {
			out.captures++
		}
		out.plies++
		log.Debug().Uint64("seed", seed).Int("ply", out.plies).Str("move", sm.Move.String()).Str("card", res.Card.Name).Msg("move")
	}
	if w, won := b.GameWon(); won {
		out.winner = w
	}
	out.final = b.Encode()
	return out, nil
}

type stats struct {
	games, redWins, blueWins, unfinished, stuck int
	plies, captures                             int
}

func (s *stats) add(o outcome) {
	s.games++
	s.plies += o.plies
	s.captures += o.captures
	switch {
	case o.winner == onitama.Red:
		s.redWins++
	case o.winner == onitama.Blue:
		s.blueWins++
	case o.stuck:
		s.stuck++
	default:
		s.unfinished++
	}
}

func (s stats) String() string {
	avg := 0.0
	if s.games > 0 {
		avg = float64(s.plies) / float64(s.games)
	}
	return fmt.Sprintf("games=%d red=%d blue=%d stuck=%d capped=%d avg_plies=%.1f captures=%d",
		s.games, s.redWins, s.blueWins, s.stuck, s.unfinished, avg, s.captures)
}
