package handler

import (
	"net/http"

	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/session"
)

// PlayerStateResponse is the full progression snapshot for one player
type PlayerStateResponse struct {
	PlayerKey        string           `json:"player_key"`
	World            string           `json:"world"`
	Depth            int              `json:"depth"`
	Power            string           `json:"power"`
	PowerAbbreviated string           `json:"power_abbreviated"`
	Gold             int64            `json:"gold"`
	Gems             int64            `json:"gems"`
	Rebirths         int              `json:"rebirths"`
	PickaxeTier      int              `json:"pickaxe_tier"`
	Inventory        map[string]int64 `json:"inventory"`
	Block            BlockInfo        `json:"block"`
}

// WorldsResponse lists the worlds available to mine
type WorldsResponse struct {
	Worlds []string `json:"worlds"`
}

// PlayerHandler handles player state HTTP requests
type PlayerHandler struct {
	sessions *session.Manager
	registry *catalog.Registry
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(sessions *session.Manager, registry *catalog.Registry) *PlayerHandler {
	return &PlayerHandler{
		sessions: sessions,
		registry: registry,
	}
}

// State handles the player state endpoint
// @Summary Get player state
// @Description Returns the current progression snapshot, depth, and live block for a player
// @Tags player
// @Produce json
// @Param player_key query string true "Player key"
// @Param world query string false "World id"
// @Success 200 {object} PlayerStateResponse "Player state"
// @Failure 400 {object} ErrorResponse "Missing player key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /player/state [get]
func (h *PlayerHandler) State(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodGet {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	playerKey, ok := GetQueryParam(r, w, "player_key")
	if !ok {
		return
	}
	world := GetOptionalQueryParam(r, "world", h.defaultWorld())

	var resp PlayerStateResponse
	err := h.sessions.With(r.Context(), playerKey, world, func(s *extraction.Session) (bool, error) {
		state := s.Ledger().Snapshot()

		inventory := make(map[string]int64, len(state.Inventory))
		for id, qty := range state.Inventory {
			inventory[string(id)] = qty
		}

		resp = PlayerStateResponse{
			PlayerKey:        playerKey,
			World:            world,
			Depth:            s.Depth(),
			Power:            state.Power.String(),
			PowerAbbreviated: state.Power.Abbreviated(),
			Gold:             state.Gold,
			Gems:             state.Gems,
			Rebirths:         state.Rebirths,
			PickaxeTier:      state.PickaxeTier,
			Inventory:        inventory,
			Block:            describeBlock(s.Block()),
		}
		return false, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerStateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Worlds handles the world list endpoint
// @Summary List worlds
// @Description Returns the ids of all loaded world catalogs
// @Tags player
// @Produce json
// @Success 200 {object} WorldsResponse "World list"
// @Router /worlds [get]
func (h *PlayerHandler) Worlds(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, WorldsResponse{Worlds: h.registry.Worlds()})
}

// defaultWorld picks the first loaded world as the fallback for state reads
func (h *PlayerHandler) defaultWorld() string {
	worlds := h.registry.Worlds()
	if len(worlds) == 0 {
		return ""
	}
	return worlds[0]
}
