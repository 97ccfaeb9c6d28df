package models

// GameRecord summarizes one sparring game against an external engine.
type GameRecord struct {
	GameIndex  int    `json:"game_index"`
	OurColor   string `json:"our_color"` // "white" or "black"
	Result     string `json:"result"`    // "win", "loss" or "draw" from our engine's POV
	Method     string `json:"method"`    // how the game ended, e.g. "Checkmate"
	Plies      int    `json:"plies"`
	FinalFEN   string `json:"final_fen"`
	ElapsedMS  int64  `json:"elapsed_ms"`
	PGNMoves   string `json:"pgn_moves,omitempty"`
	FailureMsg string `json:"failure,omitempty"`
}

// MatchSummary tallies a whole sparring match.
type MatchSummary struct {
	Games  int `json:"games"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}
