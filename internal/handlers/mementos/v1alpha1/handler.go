// Package v1alpha1 handles the memento editor grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/services/session"
)

// HandlerConfig holds dependencies for the memento editor handler
type HandlerConfig struct {
	SessionService session.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements the memento editor gRPC service
type Handler struct {
	sessionService session.Service
}

var _ MementoEditorServiceServer = (*Handler)(nil)

// NewHandler creates a new memento editor handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessionService: cfg.SessionService,
	}, nil
}

// OpenSession opens an editor session for a player
func (h *Handler) OpenSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, "player_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	leaderName, _, err := stringField(req, "leader_name")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Open(ctx, &session.OpenInput{
		PlayerID:   playerID,
		LeaderName: leaderName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := snapshotToStruct(out.Session)
	return resp, errors.ToGRPCError(err)
}

// UpdateSession applies slot, item, filter and highlight interactions
func (h *Handler) UpdateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := updateInputFromRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Update(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := snapshotToStruct(out.Session)
	return resp, errors.ToGRPCError(err)
}

// GetSession returns the current session state
func (h *Handler) GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Get(ctx, &session.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := snapshotToStruct(out.Session)
	return resp, errors.ToGRPCError(err)
}

// GetTooltip returns the tooltip strings for one memento
func (h *Handler) GetTooltip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemID, err := requiredString(req, "item_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Tooltip(ctx, &session.TooltipInput{
		SessionID: sessionID,
		ItemID:    itemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := tooltipToStruct(out.Tooltip)
	return resp, errors.ToGRPCError(err)
}

// ConfirmSession commits the session's selections. Slots that failed to
// commit are listed in the response rather than failing the call.
func (h *Handler) ConfirmSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Confirm(ctx, &session.ConfirmInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := confirmToStruct(out.Result)
	return resp, errors.ToGRPCError(err)
}

// CancelSession discards the session's selections
func (h *Handler) CancelSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.sessionService.Cancel(ctx, &session.CancelInput{SessionID: sessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}
