package handler

import (
	"net/http"

	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/ledger"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/metrics"
	"github.com/korvess/DeepMine_Go/internal/session"
)

// RebirthRequest buys count rebirths in one bundle
type RebirthRequest struct {
	PlayerKey string `json:"player_key" validate:"required,max=100"`
	World     string `json:"world" validate:"required,max=50"`
	Count     int    `json:"count" validate:"required,min=1"`
}

// RebirthResponse is the receipt for a completed rebirth purchase
type RebirthResponse struct {
	Count         int    `json:"count"`
	CostPaid      string `json:"cost_paid"`
	NewRebirths   int    `json:"new_rebirths"`
	PowerBaseline string `json:"power_baseline"`
}

// AffordableRequest previews how many rebirths the player can afford
type AffordableRequest struct {
	PlayerKey string `json:"player_key" validate:"required,max=100"`
	World     string `json:"world" validate:"required,max=50"`
}

// AffordableResponse reports the max-affordable preview
type AffordableResponse struct {
	MaxAffordable int    `json:"max_affordable"`
	NextCost      string `json:"next_cost"`
	Rebirths      int    `json:"rebirths"`
	Power         string `json:"power"`
}

// RebirthHandler handles rebirth-related HTTP requests
type RebirthHandler struct {
	sessions *session.Manager
}

// NewRebirthHandler creates a new rebirth handler
func NewRebirthHandler(sessions *session.Manager) *RebirthHandler {
	return &RebirthHandler{
		sessions: sessions,
	}
}

// Rebirth handles the rebirth purchase endpoint
// @Summary Buy rebirths
// @Description Buys count rebirths at the bundle price, resetting power to the post-rebirth baseline
// @Tags rebirth
// @Accept json
// @Produce json
// @Param request body RebirthRequest true "Rebirth request"
// @Success 200 {object} RebirthResponse "Rebirth completed"
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient power"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rebirth [post]
func (h *RebirthHandler) Rebirth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req RebirthRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rebirth"); err != nil {
		return
	}

	var receipt *ledger.RebirthReceipt
	err := h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		rec, rebirthErr := s.Ledger().Rebirth(req.Count)
		if rebirthErr != nil {
			return false, rebirthErr
		}
		receipt = rec
		return true, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgRebirthFailed, err)
		return
	}

	metrics.Rebirths.Add(float64(receipt.Count))

	log.Info("Rebirth completed",
		"player", req.PlayerKey,
		"count", receipt.Count,
		"cost", receipt.CostPaid.String(),
		"rebirths", receipt.NewRebirths)

	respondJSON(w, http.StatusOK, RebirthResponse{
		Count:         receipt.Count,
		CostPaid:      receipt.CostPaid.String(),
		NewRebirths:   receipt.NewRebirths,
		PowerBaseline: receipt.PowerBaseline.String(),
	})
}

// Affordable handles the rebirth affordability preview endpoint
// @Summary Preview affordable rebirths
// @Description Reports how many rebirths the current power could buy, without mutating state
// @Tags rebirth
// @Accept json
// @Produce json
// @Param request body AffordableRequest true "Affordable request"
// @Success 200 {object} AffordableResponse "Preview computed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rebirth/affordable [post]
func (h *RebirthHandler) Affordable(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req AffordableRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rebirth affordable"); err != nil {
		return
	}

	var resp AffordableResponse
	err := h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		led := s.Ledger()
		state := led.Snapshot()
		resp = AffordableResponse{
			MaxAffordable: led.MaxAffordableRebirths(),
			NextCost:      led.NextRebirthCost().String(),
			Rebirths:      state.Rebirths,
			Power:         state.Power.String(),
		}
		return false, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgRebirthAffordableFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
