package handler

import (
	"net/http"

	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/metrics"
	"github.com/korvess/DeepMine_Go/internal/session"
)

// SellRequest sells inventory resources for gold
type SellRequest struct {
	PlayerKey string         `json:"player_key" validate:"required,max=100"`
	World     string         `json:"world" validate:"required,max=50"`
	Resource  string         `json:"resource" validate:"required,max=100"`
	Quantity  int64          `json:"quantity" validate:"required,min=1"`
	Bonuses   []BonusPayload `json:"bonuses" validate:"dive"`
}

// SellResponse reports one completed sale
type SellResponse struct {
	Resource   string `json:"resource"`
	Quantity   int64  `json:"quantity"`
	GoldEarned int64  `json:"gold_earned"`
	Gold       int64  `json:"gold"`
}

// MarketHandler handles resource sale HTTP requests
type MarketHandler struct {
	sessions *session.Manager
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(sessions *session.Manager) *MarketHandler {
	return &MarketHandler{
		sessions: sessions,
	}
}

// Sell handles the sell endpoint
// @Summary Sell inventory resources
// @Description Removes resources from the inventory and credits coin-multiplied gold
// @Tags market
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sell request"
// @Success 200 {object} SellResponse "Sale completed"
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient resources"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sell [post]
func (h *MarketHandler) Sell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req SellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell resource"); err != nil {
		return
	}

	mults := composeMultipliers(req.Bonuses)

	var resp SellResponse
	err := h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		result, sellErr := s.Sell(domain.ResourceID(req.Resource), req.Quantity, mults[domain.BonusCoin])
		if sellErr != nil {
			return false, sellErr
		}

		resp = SellResponse{
			Resource:   string(result.Resource),
			Quantity:   result.Quantity,
			GoldEarned: result.GoldEarned,
			Gold:       s.Ledger().Snapshot().Gold,
		}
		return true, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSellResourceFailed, err)
		return
	}

	metrics.ResourcesSold.WithLabelValues(resp.Resource).Add(float64(resp.Quantity))
	metrics.GoldEarned.Add(float64(resp.GoldEarned))

	log.Info("Resources sold",
		"player", req.PlayerKey,
		"resource", resp.Resource,
		"quantity", resp.Quantity,
		"gold", resp.GoldEarned)

	respondJSON(w, http.StatusOK, resp)
}
