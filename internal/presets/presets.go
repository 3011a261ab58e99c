// Package presets holds the role pools dealt for each head count and mode.
//
// A preset file is JSON keyed by player count, then by mode name:
//
//	{"5": {"beginner": ["werewolf", "werewolf", "seer", ...]}}
//
// Role tokens may use any spelling roles.Normalize understands. Unknown
// tokens are kept as written.
package presets

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

// ModeBeginner is the mode shipped in the built-in table
const ModeBeginner = "beginner"

// Table maps player count and mode to a role pool
type Table struct {
	pools map[int]map[string][]roles.Role
}

// Default returns the built-in table covering 4 to 9 players
func Default() *Table {
	four := []roles.Role{
		roles.Werewolf, roles.Werewolf, roles.Seer, roles.Robber,
		roles.Troublemaker, roles.Drunk, roles.Villager,
	}
	five := append(clone(four[:6]), roles.Insomniac, roles.Villager)
	six := append([]roles.Role{roles.Doppelganger}, five...)
	seven := append(clone(six), roles.Tanner)
	eight := []roles.Role{
		roles.Doppelganger, roles.Werewolf, roles.Werewolf, roles.Minion, roles.Seer,
		roles.Robber, roles.Troublemaker, roles.Drunk, roles.Insomniac, roles.Villager,
		roles.Hunter,
	}
	nine := append(clone(eight), roles.Tanner)

	return &Table{pools: map[int]map[string][]roles.Role{
		4: {ModeBeginner: four},
		5: {ModeBeginner: five},
		6: {ModeBeginner: six},
		7: {ModeBeginner: seven},
		8: {ModeBeginner: eight},
		9: {ModeBeginner: nine},
	}}
}

// Parse reads a preset table from JSON
func Parse(r io.Reader) (*Table, error) {
	var raw map[string]map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "preset table is not a count to mode to pool object")
	}

	vb := errors.NewValidationBuilder()
	t := &Table{pools: make(map[int]map[string][]roles.Role, len(raw))}
	for key, modes := range raw {
		n, err := strconv.Atoi(key)
		if err != nil || n <= 0 || strconv.Itoa(n) != key {
			vb.Field(key, "player count key must be a positive integer")
			continue
		}
		if len(modes) == 0 {
			vb.Field(key, "must define at least one mode")
			continue
		}
		byMode := make(map[string][]roles.Role, len(modes))
		for mode, pool := range modes {
			if mode == "" {
				vb.Field(key, "mode name is required")
				continue
			}
			normalized := make([]roles.Role, len(pool))
			for i, token := range pool {
				normalized[i] = roles.Role(roles.Normalize(token))
			}
			byMode[mode] = normalized
		}
		t.pools[n] = byMode
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return t, nil
}

// Load reads a preset table from a JSON file
func Load(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open preset file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Counts returns the player counts with at least one mode, ascending
func (t *Table) Counts() []int {
	out := make([]int, 0, len(t.pools))
	for n := range t.pools {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Modes returns the modes for n players, sorted. Unknown counts give nil.
func (t *Table) Modes(n int) []string {
	modes, ok := t.pools[n]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(modes))
	for m := range modes {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Pool returns a copy of the pool for n players in the given mode
func (t *Table) Pool(n int, mode string) ([]roles.Role, error) {
	modes, ok := t.pools[n]
	if !ok {
		return nil, errors.InvalidArgumentf("no preset for %d players", n).
			WithMeta("reason", "unknown_player_count")
	}
	pool, ok := modes[mode]
	if !ok {
		return nil, errors.InvalidArgumentf("no mode %q for %d players", mode, n).
			WithMeta("reason", "unknown_mode").
			WithMeta("modes", t.Modes(n))
	}
	return clone(pool), nil
}

func clone(in []roles.Role) []roles.Role {
	out := make([]roles.Role, len(in))
	copy(out, in)
	return out
}
