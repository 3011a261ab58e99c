package client

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onenight-api/internal/handlers/api/v1alpha1"
)

var (
	createPool     string
	createSelected string
	createWolves   int
	createPlayers  int
	createMode     string
	createSeed     int64
)

var createTableCmd = &cobra.Command{
	Use:   "create-table",
	Short: "Open a table and deal the first round",
	Long: `Open a table from a preset, a role selection or a full pool. Examples:

  create-table --players 5
  create-table --selected seer,robber,troublemaker,villager,drunk --wolves 2
  create-table --pool werewolf,werewolf,seer,robber,troublemaker,villager,drunk --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields := map[string]any{}
		switch {
		case createPool != "":
			fields["pool"] = splitList(createPool)
		case createSelected != "":
			fields["selected"] = splitList(createSelected)
			fields["werewolf_count"] = createWolves
		default:
			fields["player_count"] = createPlayers
			fields["mode"] = createMode
		}
		if createSeed > 0 {
			fields["seed"] = createSeed
		}
		return call(cmd, v1alpha1.MethodCreateTable, fields)
	},
}

var getTableCmd = &cobra.Command{
	Use:   "get-table [table-id]",
	Short: "Show a table's session",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodGetTable),
}

var redealCmd = &cobra.Command{
	Use:   "redeal [table-id]",
	Short: "Shuffle the table's pool and deal again",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodRedeal),
}

var deleteTableCmd = &cobra.Command{
	Use:   "delete-table [table-id]",
	Short: "Close a table",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodDeleteTable),
}

func init() {
	createTableCmd.Flags().StringVar(&createPool, "pool", "", "comma separated pool of players+3 roles")
	createTableCmd.Flags().StringVar(&createSelected, "selected", "", "comma separated roles, combined with --wolves")
	createTableCmd.Flags().IntVar(&createWolves, "wolves", 2, "werewolf count for --selected")
	createTableCmd.Flags().IntVar(&createPlayers, "players", 0, "player count for a preset deal")
	createTableCmd.Flags().StringVar(&createMode, "mode", "beginner", "preset mode")
	createTableCmd.Flags().Int64Var(&createSeed, "seed", 0, "shuffle seed for a reproducible table")
}

// splitList turns "a, b,c" into []any{"a", "b", "c"}
func splitList(s string) []any {
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
