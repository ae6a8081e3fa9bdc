package metrics

// SearchRecord captures one evaluator run on one benchmark position.
type SearchRecord struct {
	Scenario  string // starting position label
	Algorithm string // "minimax" or "alphabeta"
	Ordered   bool   // move ordering enabled
	Action    string // chosen cell ("" for terminal positions)
	Value     int    // game-theoretic value of the position
	Nodes     int    // nodes visited by this run
}
