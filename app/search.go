package app

import (
	"context"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

const (
	// Hard cap on quiescence recursion. A safety bound, not tuned.
	maxQuiescenceDepth = 10

	infinity = 1 << 30
)

// positionKey identifies a position for repetition detection on the current
// search line.
type positionKey = [16]byte

// SearchResult is what iterative deepening hands back: the retained best
// move along with the deepest depth that finished inside the budget.
type SearchResult struct {
	Move     *chess.Move
	Score    int
	Depth    int
	Complete bool // every requested depth finished within the budget
	Nodes    int64
}

// Searcher runs a strictly sequential alpha-beta search. The line stack
// mirrors the recursion: each applied move pushes the child position's hash
// and pops it on the way back out, so sibling branches always see the same
// path. A Searcher is not safe for concurrent use.
type Searcher struct {
	log   zerolog.Logger
	line  []positionKey
	nodes int64
}

func NewSearcher(logger zerolog.Logger) *Searcher {
	return &Searcher{log: logger}
}

func newQuietSearcher() *Searcher {
	return &Searcher{log: zerolog.Nop()}
}

// FindBestMove searches the position to a fixed depth and returns the best
// move with its score. A nil move means the position is terminal.
func FindBestMove(pos *chess.Position, depth int) (*chess.Move, int) {
	return newQuietSearcher().FindBestMove(pos, depth)
}

// IterativeDeepening searches depths 1..maxDepth, keeping the best move from
// the last completed depth. See Searcher.IterativeDeepening.
func IterativeDeepening(ctx context.Context, pos *chess.Position, maxDepth int, budget time.Duration) SearchResult {
	return newQuietSearcher().IterativeDeepening(ctx, pos, maxDepth, budget)
}

// FindBestMove is the root of the maximizing search: it scores every legal
// move and remembers which one produced the best value.
func (s *Searcher) FindBestMove(pos *chess.Position, depth int) (*chess.Move, int) {
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return nil, 0
	}

	s.enterRoot(pos)

	var bestMove *chess.Move
	bestScore := -infinity
	alpha, beta := -infinity, infinity

	for _, move := range OrderMoves(pos, moves) {
		child := pos.Update(move)
		s.push(child)
		score := s.search(child, depth-1, alpha, beta, false)
		s.pop()

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore
}

// IterativeDeepening re-searches at increasing depth until maxDepth is done
// or the budget runs out. The budget is checked only before starting a new
// depth; a depth in flight is never interrupted, so the nominal budget can be
// overrun by one depth's worth of work.
func (s *Searcher) IterativeDeepening(ctx context.Context, pos *chess.Position, maxDepth int, budget time.Duration) SearchResult {
	start := time.Now()
	res := SearchResult{}

	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}
		if budget > 0 && time.Since(start) > budget {
			break
		}

		move, score := s.FindBestMove(pos, depth)
		if move == nil {
			break
		}
		res.Move = move
		res.Score = score
		res.Depth = depth

		s.log.Debug().
			Int("depth", depth).
			Str("move", move.String()).
			Int("score", score).
			Int64("nodes", s.nodes).
			Dur("elapsed", time.Since(start)).
			Msg("depth completed")
	}

	res.Complete = res.Depth == maxDepth
	res.Nodes = s.nodes

	// Never leave the caller without a reply while legal moves exist.
	if res.Move == nil {
		if moves := pos.ValidMoves(); len(moves) > 0 {
			res.Move = moves[0]
			res.Score = Evaluate(pos)
		}
	}
	return res
}

// search is plain minimax with alpha-beta pruning, returning scores relative
// to the root's side. The evaluator scores relative to whoever is to move, so
// leaf values reached at minimizing nodes are negated (and their windows
// mirrored) to stay in the root's sign convention. It bottoms out into
// quiescence at depth 0 and falls closed to a static evaluation whenever the
// position has no legal moves.
func (s *Searcher) search(pos *chess.Position, depth, alpha, beta int, maximizing bool) int {
	s.nodes++

	if pos.Status() != chess.NoMethod {
		return s.leafValue(pos, maximizing)
	}
	if depth == 0 {
		if maximizing {
			return s.quiescence(pos, alpha, beta, 0)
		}
		return -s.quiescence(pos, -beta, -alpha, 0)
	}

	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return s.leafValue(pos, maximizing)
	}
	moves = OrderMoves(pos, moves)

	if maximizing {
		best := -infinity
		for _, move := range moves {
			child := pos.Update(move)
			s.push(child)
			score := s.search(child, depth-1, alpha, beta, false)
			s.pop()

			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := infinity
	for _, move := range moves {
		child := pos.Update(move)
		s.push(child)
		score := s.search(child, depth-1, alpha, beta, true)
		s.pop()

		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// quiescence extends the search through captures and checks only, using the
// static evaluation as a stand-pat bound so the engine never misjudges a
// position in the middle of an exchange.
func (s *Searcher) quiescence(pos *chess.Position, alpha, beta, qdepth int) int {
	s.nodes++

	if qdepth > maxQuiescenceDepth {
		return s.evaluate(pos)
	}

	standPat := s.evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var noisy []*chess.Move
	for _, move := range pos.ValidMoves() {
		if move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant) || move.HasTag(chess.Check) {
			noisy = append(noisy, move)
		}
	}
	if len(noisy) == 0 {
		return alpha
	}

	for _, move := range OrderMoves(pos, noisy) {
		child := pos.Update(move)
		s.push(child)
		score := -s.quiescence(child, -beta, -alpha, qdepth+1)
		s.pop()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (s *Searcher) evaluate(pos *chess.Position) int {
	return evaluatePosition(pos, s.line)
}

// leafValue converts the mover-relative evaluation into the root-relative
// sign used by search.
func (s *Searcher) leafValue(pos *chess.Position, maximizing bool) int {
	v := s.evaluate(pos)
	if !maximizing {
		return -v
	}
	return v
}

// enterRoot resets the line stack to the root position. Callers that want
// game-history repetition awareness can seed the stack first via SeedHistory.
func (s *Searcher) enterRoot(pos *chess.Position) {
	if n := len(s.line); n > 0 && s.line[n-1] == pos.Hash() {
		return
	}
	s.line = append(s.line, pos.Hash())
}

// SeedHistory loads the hashes of previously played positions so that
// repetitions against the actual game are recognized during search.
func (s *Searcher) SeedHistory(positions []*chess.Position) {
	s.line = s.line[:0]
	for _, pos := range positions {
		s.line = append(s.line, pos.Hash())
	}
}

func (s *Searcher) push(pos *chess.Position) {
	s.line = append(s.line, pos.Hash())
}

func (s *Searcher) pop() {
	s.line = s.line[:len(s.line)-1]
}
