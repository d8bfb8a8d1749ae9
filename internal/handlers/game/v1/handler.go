// Package v1 exposes the game over gRPC with a JSON codec
package v1

import (
	"context"

	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/game"
	"github.com/KirkDiggler/doodle-api/internal/services/simulation"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	GameService       game.Service
	SimulationService simulation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameService == nil {
		vb.RequiredField("GameService")
	}
	if c.SimulationService == nil {
		vb.RequiredField("SimulationService")
	}

	return vb.Build()
}

// Handler implements GameServiceServer
type Handler struct {
	gameService       game.Service
	simulationService simulation.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService:       cfg.GameService,
		simulationService: cfg.SimulationService,
	}, nil
}

// GetState returns the current view
func (h *Handler) GetState(ctx context.Context, _ *GetStateRequest) (*GetStateResponse, error) {
	out, err := h.gameService.GetState(ctx, &game.GetStateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetStateResponse{View: convertView(out.View)}, nil
}

// Summon buys a doodle in the active area
func (h *Handler) Summon(ctx context.Context, _ *SummonRequest) (*SummonResponse, error) {
	out, err := h.gameService.Summon(ctx, &game.SummonInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SummonResponse{
		Doodle:  convertDoodle(out.Doodle),
		Cost:    out.Cost,
		Balance: out.Balance,
		View:    convertView(out.View),
	}, nil
}

// Equip places a doodle into a slot
func (h *Handler) Equip(ctx context.Context, req *EquipRequest) (*EquipResponse, error) {
	if req.DoodleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("doodle_id is required"))
	}

	out, err := h.gameService.Equip(ctx, &game.EquipInput{DoodleID: req.DoodleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipResponse{
		SlotIndex: out.SlotIndex,
		Changed:   out.Changed,
		View:      convertView(out.View),
	}, nil
}

// Unequip clears a slot
func (h *Handler) Unequip(ctx context.Context, req *UnequipRequest) (*UnequipResponse, error) {
	out, err := h.gameService.Unequip(ctx, &game.UnequipInput{SlotIndex: req.SlotIndex})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnequipResponse{
		Changed: out.Changed,
		View:    convertView(out.View),
	}, nil
}

// UpgradeSlot raises a slot level
func (h *Handler) UpgradeSlot(ctx context.Context, req *UpgradeSlotRequest) (*UpgradeSlotResponse, error) {
	out, err := h.gameService.UpgradeSlot(ctx, &game.UpgradeSlotInput{SlotIndex: req.SlotIndex})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpgradeSlotResponse{
		Level:    out.Level,
		Cost:     out.Cost,
		NextCost: out.NextCost,
		View:     convertView(out.View),
	}, nil
}

// ChangeArea moves between unlocked areas
func (h *Handler) ChangeArea(ctx context.Context, req *ChangeAreaRequest) (*ChangeAreaResponse, error) {
	if req.Direction != -1 && req.Direction != 1 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("direction must be -1 or 1"))
	}

	out, err := h.gameService.ChangeArea(ctx, &game.ChangeAreaInput{Direction: req.Direction})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeAreaResponse{
		AreaIndex: out.AreaIndex,
		Changed:   out.Changed,
		View:      convertView(out.View),
	}, nil
}

// UnlockNextArea buys the next area
func (h *Handler) UnlockNextArea(ctx context.Context, _ *UnlockNextAreaRequest) (*UnlockNextAreaResponse, error) {
	out, err := h.gameService.UnlockNextArea(ctx, &game.UnlockNextAreaInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnlockNextAreaResponse{
		AreaIndex: out.AreaIndex,
		Changed:   out.Changed,
		Cost:      out.Cost,
		View:      convertView(out.View),
	}, nil
}

// ClearSave wipes the saved game and resets to defaults
func (h *Handler) ClearSave(ctx context.Context, _ *ClearSaveRequest) (*ClearSaveResponse, error) {
	out, err := h.gameService.ClearSave(ctx, &game.ClearSaveInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearSaveResponse{
		KeysDeleted: out.KeysDeleted,
		View:        convertView(out.View),
	}, nil
}

// Simulate estimates summon outcomes for an area
func (h *Handler) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	out, err := h.simulationService.Run(ctx, &simulation.RunInput{
		AreaIndex: req.AreaIndex,
		Trials:    req.Trials,
		Seed:      req.Seed,
		Policy:    req.Policy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertSimulation(out), nil
}
