// Package errors provides the structured errors used across doodle-api.
//
// Every error carries a Code that maps one-to-one onto a gRPC code, a user-facing
// Message, an optional Cause and free-form Meta.
//
// # Game taxonomy
//
// The progression engine only ever fails in three ways:
//
//	errors.InsufficientFunds("summon", cost, balance) // FAILED_PRECONDITION, reason=insufficient_funds
//	errors.NotFoundf("doodle %s not in inventory", id)  // lookups the caller asked for explicitly
//	errors.Configuration("no common templates")         // INTERNAL, reason=configuration
//
// A slot that points at a doodle missing from the inventory is not an error: it
// resolves to an empty slot.
//
// Checking:
//
//	if errors.IsInsufficientFunds(err) {
//	    // tell the player, state is unchanged
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", tmpl.Name, vb)
//	errors.ValidatePositive("mult", area.StatMultiplier, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Meta is attached as a google.rpc.ErrorInfo
// detail so clients can recover the reason with FromGRPCError.
package errors
