// Package roles is the role catalog for the one night game.
//
// Role is a closed set of canonical tokens. Anything that makes a rules
// decision should switch on Role values. Normalize is the permissive entry
// point for text from the outside world: it understands case and width
// variants, English aliases and the Chinese card names, and hands back
// unknown tokens untouched so that custom cards can still travel through a
// pool.
package roles
