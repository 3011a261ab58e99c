// Package dealer is the session engine for a one night game table.
//
// A Dealer owns at most one Session. StartGameWithSelection shuffles a role
// pool and deals it to seats and three center cards, replacing whatever
// session came before. From there the caller drives the round: one-shot
// card views, seat and center swaps, night steps in wake order, and finally
// victory classification from the executed seats.
//
// Night eligibility always comes from the cards as dealt. Victory always
// comes from the cards as they lie at the end.
//
// A Dealer is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package dealer
