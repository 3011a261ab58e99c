package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onenight-api/internal/dealer"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	"github.com/KirkDiggler/onenight-api/internal/pkg/rng"
	"github.com/KirkDiggler/onenight-api/internal/presets"
	"github.com/KirkDiggler/onenight-api/internal/roles"
)

var (
	dealPlayers int
	dealMode    string
	dealPool    string
	dealSeed    uint64
	dealPresets string
	dealOut     string
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal one round offline and print it as CSV",
	Long: `Deal a round without a server. Examples:

  deal --players 6
  deal --pool werewolf,werewolf,seer,robber,troublemaker,villager,drunk --seed 7
  deal --players 8 --presets presets.json --out round.csv`,
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().IntVar(&dealPlayers, "players", 0, "player count, dealt from the preset table")
	dealCmd.Flags().StringVar(&dealMode, "mode", presets.ModeBeginner, "preset mode")
	dealCmd.Flags().StringVar(&dealPool, "pool", "", "comma separated pool, used instead of a preset")
	dealCmd.Flags().Uint64Var(&dealSeed, "seed", 0, "shuffle seed; 0 uses a random roller")
	dealCmd.Flags().StringVar(&dealPresets, "presets", "", "preset table JSON file")
	dealCmd.Flags().StringVar(&dealOut, "out", "", "write CSV to this file instead of stdout")
}

func runDeal(cmd *cobra.Command, _ []string) (err error) {
	var roller dice.Roller = dice.DefaultRoller
	if dealSeed != 0 {
		roller = rng.New(dealSeed)
	}

	d, err := dealer.New(&dealer.Config{Roller: roller, Clock: clock.New()})
	if err != nil {
		return err
	}

	deal, err := dealRound(d)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if dealOut != "" {
		f, createErr := os.Create(dealOut)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", dealOut, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close %s: %w", dealOut, closeErr)
			}
		}()
		w = f
	}

	return dealer.WriteDeal(w, deal)
}

func dealRound(d *dealer.Dealer) (*dealer.Deal, error) {
	if dealPool != "" {
		tokens := strings.Split(dealPool, ",")
		pool := make([]roles.Role, len(tokens))
		for i, t := range tokens {
			pool[i] = roles.Role(roles.Normalize(t))
		}
		return d.StartGameWithSelection(pool)
	}

	if dealPlayers == 0 {
		return nil, fmt.Errorf("either --players or --pool is required")
	}

	table := presets.Default()
	if dealPresets != "" {
		var err error
		if table, err = presets.Load(dealPresets); err != nil {
			return nil, err
		}
	}
	return d.Deal(table, dealPlayers, dealMode)
}
