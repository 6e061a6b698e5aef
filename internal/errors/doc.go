// Package errors provides the structured error type used across the memento
// editor.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata:
//
//	err := errors.NotFoundf("memento %s not found", id).
//	    WithMeta("slot_id", slotID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save highlights")
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound and InvalidArgument for expected conditions and
// wrap storage failures. Orchestrators that back interactive operations log
// and contain persistence failures instead of returning them. Handlers convert
// with ToGRPCError before returning to the transport.
package errors
