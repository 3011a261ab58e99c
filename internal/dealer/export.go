package dealer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/KirkDiggler/onenight-api/internal/errors"
)

// playerRow labels seat rows in an exported deal
const playerRow = "player"

// WriteDeal writes a deal as CSV, one card per row, numbered from 1:
//
//	player,1,werewolf
//	center,1,seer
func WriteDeal(w io.Writer, deal *Deal) error {
	if deal == nil {
		return errors.InvalidArgument("deal is required")
	}

	cw := csv.NewWriter(w)
	for i, r := range deal.PlayerCards {
		if err := cw.Write([]string{playerRow, strconv.Itoa(i + 1), string(r)}); err != nil {
			return errors.Wrap(err, "failed to write player row")
		}
	}
	for i, r := range deal.CenterCards {
		if err := cw.Write([]string{string(KindCenter), strconv.Itoa(i + 1), string(r)}); err != nil {
			return errors.Wrap(err, "failed to write center row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "failed to flush deal")
	}
	return nil
}
