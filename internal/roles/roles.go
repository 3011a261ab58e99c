package roles

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// Role is a canonical role token
type Role string

// Known roles
const (
	Doppelganger Role = "doppelganger"
	Werewolf     Role = "werewolf"
	Minion       Role = "minion"
	Mason        Role = "mason"
	Seer         Role = "seer"
	Robber       Role = "robber"
	Troublemaker Role = "troublemaker"
	Drunk        Role = "drunk"
	Insomniac    Role = "insomniac"
	Villager     Role = "villager"
	Tanner       Role = "tanner"
	Hunter       Role = "hunter"
	Bodyguard    Role = "bodyguard"
)

// All lists every known role in catalog order
var All = []Role{
	Doppelganger, Werewolf, Minion, Mason, Seer, Robber, Troublemaker,
	Drunk, Insomniac, Villager, Tanner, Hunter, Bodyguard,
}

var nightOrder = []Role{
	Doppelganger, Werewolf, Minion, Mason, Seer, Robber, Troublemaker, Drunk, Insomniac,
}

var displayNames = map[Role]string{
	Doppelganger: "化身幽灵",
	Werewolf:     "狼人",
	Minion:       "爪牙",
	Mason:        "守夜人",
	Seer:         "预言家",
	Robber:       "强盗",
	Troublemaker: "捣蛋鬼",
	Drunk:        "酒鬼",
	Insomniac:    "失眠者",
	Villager:     "村民",
	Tanner:       "皮匠",
	Hunter:       "猎人",
	Bodyguard:    "保镖",
}

// aliases maps folded spellings to roles. Canonical tokens and display
// names are added in init.
var aliases = map[string]Role{
	"wolf":          Werewolf,
	"werewolves":    Werewolf,
	"狼":             Werewolf,
	"doppel":        Doppelganger,
	"doppelgänger":  Doppelganger,
	"trouble maker": Troublemaker,
	"trouble-maker": Troublemaker,
	"trouble_maker": Troublemaker,
	"masons":        Mason,
	"共济会":           Mason,
	"villagers":     Villager,
	"平民":            Villager,
	"drunkard":      Drunk,
	"thief":         Robber,
	"盗贼":            Robber,
}

func init() {
	for _, r := range All {
		aliases[fold(string(r))] = r
		aliases[fold(displayNames[r])] = r
	}
}

func fold(s string) string {
	return cases.Fold().String(width.Fold.String(strings.TrimSpace(s)))
}

// Normalize maps any known spelling of a role to its canonical token.
// Empty input gives "" and unknown input is returned unchanged.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if r, ok := aliases[fold(raw)]; ok {
		return string(r)
	}
	return raw
}

// Parse is the strict form of Normalize
func Parse(raw string) (Role, bool) {
	r, ok := aliases[fold(raw)]
	return r, ok
}

// Of normalizes a role value that may hold an alias
func Of(r Role) Role {
	return Role(Normalize(string(r)))
}

// Valid reports whether r is a canonical known role
func (r Role) Valid() bool {
	_, ok := displayNames[r]
	return ok
}

// String returns the token
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the Chinese card label, or the token itself for
// roles outside the catalog.
func DisplayName(r Role) string {
	if name, ok := displayNames[Of(r)]; ok {
		return name
	}
	return string(r)
}

// NightOrder returns the roles that wake at night, in wake order
func NightOrder() []Role {
	out := make([]Role, len(nightOrder))
	copy(out, nightOrder)
	return out
}

// WakesAtNight reports whether r has a night step
func WakesAtNight(r Role) bool {
	switch r {
	case Doppelganger, Werewolf, Minion, Mason, Seer, Robber, Troublemaker, Drunk, Insomniac:
		return true
	case Villager, Tanner, Hunter, Bodyguard:
		return false
	default:
		return false
	}
}

// FromStrings converts raw tokens into roles without normalizing them
func FromStrings(in []string) []Role {
	out := make([]Role, len(in))
	for i, s := range in {
		out[i] = Role(s)
	}
	return out
}

// Strings converts roles back into plain tokens
func Strings(in []Role) []string {
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = string(r)
	}
	return out
}
