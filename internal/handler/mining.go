package handler

import (
	"net/http"

	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/metrics"
	"github.com/korvess/DeepMine_Go/internal/session"
)

// HitRequest represents one mining hit against the player's live block.
// BaseDamage overrides the pickaxe-tier base damage when positive; bonuses
// carry percent deltas that compose into the effective multipliers.
type HitRequest struct {
	PlayerKey  string         `json:"player_key" validate:"required,max=100"`
	World      string         `json:"world" validate:"required,max=50"`
	BaseDamage float64        `json:"base_damage" validate:"gte=0"`
	Bonuses    []BonusPayload `json:"bonuses" validate:"dive"`
}

// HitResponse reports what one mining hit did
type HitResponse struct {
	Damage           int       `json:"damage"`
	Destroyed        bool      `json:"destroyed"`
	AlreadyDestroyed bool      `json:"already_destroyed,omitempty"`
	RemainingHP      int       `json:"remaining_hp"`
	Depth            int       `json:"depth"`
	MinedResource    string    `json:"mined_resource,omitempty"`
	GemsAwarded      int64     `json:"gems_awarded,omitempty"`
	Block            BlockInfo `json:"block"`
}

// LeaveRequest abandons the current block and respawns a fresh one
type LeaveRequest struct {
	PlayerKey string         `json:"player_key" validate:"required,max=100"`
	World     string         `json:"world" validate:"required,max=50"`
	Bonuses   []BonusPayload `json:"bonuses" validate:"dive"`
}

// LeaveResponse reports the respawned block
type LeaveResponse struct {
	Depth int       `json:"depth"`
	Block BlockInfo `json:"block"`
}

// MiningHandler handles mining-related HTTP requests
type MiningHandler struct {
	sessions *session.Manager
	registry *catalog.Registry
}

// NewMiningHandler creates a new mining handler
func NewMiningHandler(sessions *session.Manager, registry *catalog.Registry) *MiningHandler {
	return &MiningHandler{
		sessions: sessions,
		registry: registry,
	}
}

// Hit handles the mine hit endpoint
// @Summary Apply one mining hit
// @Description Damages the player's live block; on destruction pays out ore or gems and advances depth
// @Tags mining
// @Accept json
// @Produce json
// @Param request body HitRequest true "Hit request"
// @Success 200 {object} HitResponse "Hit applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /mine/hit [post]
func (h *MiningHandler) Hit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req HitRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mine hit"); err != nil {
		return
	}

	cat, err := h.registry.World(req.World)
	if err != nil {
		respondServiceError(w, r, ErrMsgMineHitFailed, err)
		return
	}

	mults := composeMultipliers(req.Bonuses)

	var (
		result *extraction.HitResult
		block  BlockInfo
	)
	err = h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		base := req.BaseDamage
		if base <= 0 {
			base = cat.Pickaxe(s.Ledger().Snapshot().PickaxeTier).BaseDamage
		}

		res, hitErr := s.Hit(extraction.HitInput{
			BaseDamage:       base,
			DamageMultiplier: mults[domain.BonusDamage],
			GemMultiplier:    mults[domain.BonusGem],
			Luck:             mults[domain.BonusLuck] - 1,
		})
		if hitErr != nil {
			return false, hitErr
		}

		result = res
		block = describeBlock(s.Block())
		return true, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgMineHitFailed, err)
		return
	}

	metrics.MiningHits.WithLabelValues(req.World).Inc()
	if result.Destroyed {
		if result.MinedResource != "" {
			metrics.BlocksDestroyed.WithLabelValues(req.World, string(result.MinedResource)).Inc()
		}
		if result.GemsAwarded > 0 {
			metrics.BonusCachesDestroyed.WithLabelValues(req.World).Inc()
			metrics.GemsEarned.Add(float64(result.GemsAwarded))
		}
	}

	log.Info("Mine hit applied",
		"player", req.PlayerKey,
		"world", req.World,
		"damage", result.Damage,
		"destroyed", result.Destroyed,
		"depth", result.Depth)

	respondJSON(w, http.StatusOK, HitResponse{
		Damage:           result.Damage,
		Destroyed:        result.Destroyed,
		AlreadyDestroyed: result.AlreadyDestroyed,
		RemainingHP:      result.RemainingHP,
		Depth:            result.Depth,
		MinedResource:    string(result.MinedResource),
		GemsAwarded:      result.GemsAwarded,
		Block:            block,
	})
}

// Leave handles the mine leave endpoint
// @Summary Abandon the current block
// @Description Respawns a fresh block at the current depth without any payout
// @Tags mining
// @Accept json
// @Produce json
// @Param request body LeaveRequest true "Leave request"
// @Success 200 {object} LeaveResponse "Block respawned"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /mine/leave [post]
func (h *MiningHandler) Leave(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req LeaveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mine leave"); err != nil {
		return
	}

	mults := composeMultipliers(req.Bonuses)

	var resp LeaveResponse
	err := h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		s.Leave(mults[domain.BonusLuck] - 1)
		resp = LeaveResponse{
			Depth: s.Depth(),
			Block: describeBlock(s.Block()),
		}
		return true, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgLeaveMineFailed, err)
		return
	}

	log.Info("Mine block abandoned", "player", req.PlayerKey, "world", req.World, "depth", resp.Depth)

	respondJSON(w, http.StatusOK, resp)
}
