// Package errors provides the structured error type used across onenight-api.
//
// Every failure carries a Code, a short message and optional metadata. Codes map
// one-to-one onto gRPC status codes so handlers can return them unchanged.
//
// # Creating errors
//
//	err := errors.OutOfRangef("seat %d out of range", seat)
//	err := errors.FailedPrecondition("no active session").
//	    WithMeta("table_id", tableID)
//
// # Wrapping
//
// Wrap keeps the code of a wrapped *Error and defaults to Internal otherwise:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to archive round")
//	}
//
// # Checking
//
//	if errors.IsOutOfRange(err) { ... }
//	code := errors.GetCode(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("player_count", n, 4, 12, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Codes used by the dealer
//
//   - FailedPrecondition: operation needs an active session, or the action phase is over
//   - OutOfRange: seat or center index outside its bounds
//   - InvalidArgument: pool or player count validation
//   - AlreadyExists: one-shot action repeated (card already viewed)
package errors
