package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onenight-api/internal/handlers/api/v1alpha1"
)

var resolveVoteCmd = &cobra.Command{
	Use:   "resolve-vote [table-id] [voter=target ...]",
	Short: "Tally the day vote and show who won",
	Long: `Each vote is voter seat = voted seat. Example:

  resolve-vote table_123 0=2 1=2 2=0 3=2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		votes, err := parseVotes(args[1:])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodResolveVote, map[string]any{
			"table_id": args[0],
			"votes":    votes,
		})
	},
}

var listRoundsCmd = &cobra.Command{
	Use:   "list-rounds [table-id]",
	Short: "List the table's archived rounds",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodListRounds),
}

func parseVotes(args []string) (map[string]any, error) {
	votes := make(map[string]any, len(args))
	for _, a := range args {
		voter, target, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("vote %q is not voter=target", a)
		}
		if _, err := strconv.Atoi(voter); err != nil {
			return nil, fmt.Errorf("voter %q is not a seat", voter)
		}
		seat, err := strconv.Atoi(target)
		if err != nil {
			return nil, fmt.Errorf("target %q is not a seat", target)
		}
		votes[voter] = seat
	}
	return votes, nil
}
