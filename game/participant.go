package game

// Participant is any card-holding entity at the table. The dealer and the
// player share the same hand bookkeeping; how each one decides is fully
// divergent, so only the bookkeeping is shared.
type Participant interface {
	Draw(Card)
	Clear()
	Cards() []Card
	Score() int
}
