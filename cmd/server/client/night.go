package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/onenight-api/internal/handlers/api/v1alpha1"
)

var viewCardCmd = &cobra.Command{
	Use:   "view-card [table-id] [seat]",
	Short: "Look at a seat's card (once per seat)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := intArgs(args[1:])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodViewCard, map[string]any{"table_id": args[0], "seat": n[0]})
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap [table-id] [seat-a] [seat-b]",
	Short: "Exchange two seats' cards",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := intArgs(args[1:])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodSwapPlayers, map[string]any{
			"table_id": args[0],
			"seat_a":   n[0],
			"seat_b":   n[1],
		})
	},
}

var swapCenterCmd = &cobra.Command{
	Use:   "swap-center [table-id] [seat] [center]",
	Short: "Exchange a seat's card with a center card",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := intArgs(args[1:])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodSwapCenter, map[string]any{
			"table_id": args[0],
			"seat":     n[0],
			"center":   n[1],
		})
	},
}

var copyRoleCmd = &cobra.Command{
	Use:   "copy-role [table-id] [doppelganger-seat] [target-seat]",
	Short: "Let the doppelganger copy another seat",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := intArgs(args[1:])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodCopyRole, map[string]any{
			"table_id":          args[0],
			"doppelganger_seat": n[0],
			"target_seat":       n[1],
		})
	},
}

var nightStepsCmd = &cobra.Command{
	Use:   "night-steps [table-id]",
	Short: "Show who wakes and in what order",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodGetNightSteps),
}

var runNightCmd = &cobra.Command{
	Use:   "run-night [table-id]",
	Short: "Play the night with random choices",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodRunNight),
}

var endNightCmd = &cobra.Command{
	Use:   "end-night [table-id]",
	Short: "Close the action phase",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodEndNight),
}

var advanceTurnCmd = &cobra.Command{
	Use:   "advance-turn [table-id]",
	Short: "Move the turn to the next seat",
	Args:  cobra.ExactArgs(1),
	RunE:  tableOnly(v1alpha1.MethodAdvanceTurn),
}
