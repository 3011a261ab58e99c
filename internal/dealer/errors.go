package dealer

import (
	"github.com/KirkDiggler/onenight-api/internal/errors"
)

// Validation reasons attached under the "reason" meta key
const (
	ReasonPoolTooShort           = "pool_too_short"
	ReasonPlayerCountOutOfRange  = "player_count_out_of_range"
	ReasonNotDoppelganger        = "not_doppelganger"
	ReasonSelfTarget             = "self_target"
	ReasonDuplicateTarget        = "duplicate_target"
	ReasonPresetPoolTooShort     = "preset_pool_too_short"
	ReasonIncompleteCenterChoice = "incomplete_center_choice"
)

func noSession() error {
	return errors.FailedPrecondition("no active session")
}

func actionPhaseOver() error {
	return errors.FailedPrecondition("action phase has ended")
}

func seatOutOfRange(seat, playerCount int) error {
	return errors.OutOfRangef("seat %d out of range [0, %d)", seat, playerCount).
		WithMeta("seat", seat)
}

func centerOutOfRange(center int) error {
	return errors.OutOfRangef("center card %d out of range [0, %d)", center, CenterCards).
		WithMeta("center", center)
}

func invalid(reason, format string, args ...any) error {
	return errors.InvalidArgumentf(format, args...).WithMeta("reason", reason)
}

// IsStateError reports an operation made without a session or after the
// action phase closed
func IsStateError(err error) bool {
	return errors.IsFailedPrecondition(err)
}

// IsRangeError reports a seat or center index out of bounds
func IsRangeError(err error) bool {
	return errors.IsOutOfRange(err)
}

// IsValidationError reports a rejected pool, preset or choice
func IsValidationError(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsRepeatedActionError reports a one-shot action made twice
func IsRepeatedActionError(err error) bool {
	return errors.IsAlreadyExists(err)
}

// Reason returns the validation reason carried by err, if any
func Reason(err error) string {
	reason, _ := errors.GetMeta(err)["reason"].(string)
	return reason
}
