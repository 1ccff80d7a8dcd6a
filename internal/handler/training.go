package handler

import (
	"net/http"

	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/logger"
	"github.com/korvess/DeepMine_Go/internal/metrics"
	"github.com/korvess/DeepMine_Go/internal/session"
)

// TrainRequest represents one training hit at a training tier
type TrainRequest struct {
	PlayerKey    string         `json:"player_key" validate:"required,max=100"`
	World        string         `json:"world" validate:"required,max=50"`
	TrainingTier int            `json:"training_tier" validate:"gte=0"`
	Bonuses      []BonusPayload `json:"bonuses" validate:"dive"`
}

// TrainResponse reports the power gained by one training hit
type TrainResponse struct {
	Gain                string `json:"gain"`
	NewPower            string `json:"new_power"`
	NewPowerAbbreviated string `json:"new_power_abbreviated"`
}

// TrainingHandler handles training-related HTTP requests
type TrainingHandler struct {
	sessions *session.Manager
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(sessions *session.Manager) *TrainingHandler {
	return &TrainingHandler{
		sessions: sessions,
	}
}

// Hit handles the train hit endpoint
// @Summary Apply one training hit
// @Description Credits the power gained by one hit at the given training tier
// @Tags training
// @Accept json
// @Produce json
// @Param request body TrainRequest true "Train request"
// @Success 200 {object} TrainResponse "Training hit applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /train/hit [post]
func (h *TrainingHandler) Hit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req TrainRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Train hit"); err != nil {
		return
	}

	mults := composeMultipliers(req.Bonuses)

	var resp TrainResponse
	err := h.sessions.With(r.Context(), req.PlayerKey, req.World, func(s *extraction.Session) (bool, error) {
		result, trainErr := s.Train(req.TrainingTier, mults[domain.BonusTrainingSpeed])
		if trainErr != nil {
			return false, trainErr
		}

		resp = TrainResponse{
			Gain:                result.Gain,
			NewPower:            result.NewPower,
			NewPowerAbbreviated: s.Ledger().Snapshot().Power.Abbreviated(),
		}
		return true, nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgTrainHitFailed, err)
		return
	}

	metrics.TrainingHits.WithLabelValues(req.World).Inc()

	log.Info("Training hit applied",
		"player", req.PlayerKey,
		"world", req.World,
		"tier", req.TrainingTier,
		"gain", resp.Gain)

	respondJSON(w, http.StatusOK, resp)
}
