package engine

// HandContext carries the session-level facts a policy may consult when
// deciding or sizing a bet.
type HandContext struct {
	HandNumber int
	Bankroll   int64
	BaseBet    int64
	BonusBet   int64
}

// Strategy decides whether each withdrawable circle rides or is pulled.
// Implementations live outside the engine; the engine only calls them
// at the two decision phases with a phase-correct analysis.
type Strategy interface {
	DecideBet1(a HandAnalysis, ctx HandContext) Decision
	DecideBet2(a HandAnalysis, ctx HandContext) Decision
}

// BettingSystem sizes the base bet for each hand and observes results
// so progression systems can adjust.
type BettingSystem interface {
	Bet(ctx HandContext) int64
	RecordResult(net int64)
	Reset()
}
