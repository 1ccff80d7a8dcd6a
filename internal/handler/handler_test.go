package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korvess/DeepMine_Go/internal/bignum"
	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/domain"
	"github.com/korvess/DeepMine_Go/internal/extraction"
	"github.com/korvess/DeepMine_Go/internal/repository"
	"github.com/korvess/DeepMine_Go/internal/session"
)

type testEnv struct {
	sessions *session.Manager
	registry *catalog.Registry
	mining   *MiningHandler
	training *TrainingHandler
	rebirth  *RebirthHandler
	market   *MarketHandler
	player   *PlayerHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	overworld, err := catalog.New(catalog.Catalog{
		World:            "overworld",
		TerminalDepth:    1000,
		FallbackResource: "stone",
		Resources: []domain.ResourceDefinition{
			{ID: "stone", Name: "Stone", Rarity: 1, Value: 2, FirstDepth: 0, FirstHealth: 10, LastHealth: 10},
		},
		PickaxeTiers:  []domain.PickaxeTier{{Tier: 0, Name: "Wood", BaseDamage: 1}, {Tier: 1, Name: "Iron", BaseDamage: 5}},
		TrainingTiers: []domain.TrainingTier{{Tier: 0, Name: "Yard", GainConstant: 12}},
	})
	require.NoError(t, err)

	registry := catalog.NewRegistry([]*catalog.Catalog{overworld})
	sessions := session.NewManager(registry, repository.NewMemoryPlayer(), 64, time.Hour)

	return &testEnv{
		sessions: sessions,
		registry: registry,
		mining:   NewMiningHandler(sessions, registry),
		training: NewTrainingHandler(sessions),
		rebirth:  NewRebirthHandler(sessions),
		market:   NewMarketHandler(sessions),
		player:   NewPlayerHandler(sessions, registry),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestMineHit(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{
		PlayerKey: "p1",
		World:     "overworld",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[HitResponse](t, rec)
	assert.Equal(t, 1, resp.Damage)
	assert.False(t, resp.Destroyed)
	assert.Equal(t, 9, resp.RemainingHP)
	assert.Equal(t, 0, resp.Depth)
	assert.Equal(t, "stone", resp.Block.Resource)
	assert.Equal(t, 9, resp.Block.CurrentHP)
}

func TestMineHitDamageBonus(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Bonuses: []BonusPayload{
			{Category: "damage", Percent: 60, Source: "gear"},
			{Category: "damage", Percent: 40, Source: "potion"},
			{Category: "coin", Percent: 500, Source: "ignored for damage"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[HitResponse](t, rec)
	// 1 base damage at a composed x2 multiplier
	assert.Equal(t, 2, resp.Damage)
	assert.Equal(t, 8, resp.RemainingHP)
}

func TestMineHitDestroysBlock(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{
		PlayerKey:  "p1",
		World:      "overworld",
		BaseDamage: 10,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[HitResponse](t, rec)
	assert.True(t, resp.Destroyed)
	assert.Equal(t, "stone", resp.MinedResource)
	assert.Equal(t, 1, resp.Depth)
	assert.Equal(t, 10, resp.Block.CurrentHP, "fresh block spawns at full health")

	err := env.sessions.With(context.Background(), "p1", "overworld", func(s *extraction.Session) (bool, error) {
		assert.Equal(t, int64(1), s.Ledger().Snapshot().Inventory["stone"])
		return false, nil
	})
	require.NoError(t, err)
}

func TestMineHitUnknownWorld(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{
		PlayerKey: "p1",
		World:     "atlantis",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgUnknownWorldError, resp.Error)
}

func TestMineHitValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{World: "overworld"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ValidationErrorResponse](t, rec)
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields, "playerkey")
}

func TestMineHitRejectsBadBonusCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Bonuses:   []BonusPayload{{Category: "strength", Percent: 10}},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMineLeaveRespawnsBlock(t *testing.T) {
	env := newTestEnv(t)

	// Chip the block first so the respawn is observable.
	rec := postJSON(t, env.mining.Hit, "/api/v1/mine/hit", HitRequest{PlayerKey: "p1", World: "overworld"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, env.mining.Leave, "/api/v1/mine/leave", LeaveRequest{PlayerKey: "p1", World: "overworld"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[LeaveResponse](t, rec)
	assert.Equal(t, 0, resp.Depth)
	assert.Equal(t, 10, resp.Block.CurrentHP)
}

func TestTrainHit(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.training.Hit, "/api/v1/train/hit", TrainRequest{
		PlayerKey:    "p1",
		World:        "overworld",
		TrainingTier: 0,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TrainResponse](t, rec)
	assert.Equal(t, "12", resp.Gain)
	assert.Equal(t, "112", resp.NewPower)
	assert.Equal(t, "112", resp.NewPowerAbbreviated)
}

func TestTrainHitCompanionBonus(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.training.Hit, "/api/v1/train/hit", TrainRequest{
		PlayerKey:    "p1",
		World:        "overworld",
		TrainingTier: 0,
		Bonuses:      []BonusPayload{{Category: "training_speed", Percent: 50, Source: "companion"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TrainResponse](t, rec)
	assert.Equal(t, "18", resp.Gain)
	assert.Equal(t, "118", resp.NewPower)
}

func TestRebirthInsufficientPower(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.rebirth.Rebirth, "/api/v1/rebirth", RebirthRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Count:     1,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgNotEnoughPowerError, resp.Error)
}

func TestRebirth(t *testing.T) {
	env := newTestEnv(t)

	err := env.sessions.With(context.Background(), "p1", "overworld", func(s *extraction.Session) (bool, error) {
		return true, s.Ledger().CreditPower(bignum.FromInt64(2000))
	})
	require.NoError(t, err)

	rec := postJSON(t, env.rebirth.Rebirth, "/api/v1/rebirth", RebirthRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Count:     1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[RebirthResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "1000", resp.CostPaid)
	assert.Equal(t, 1, resp.NewRebirths)
	assert.Equal(t, "100", resp.PowerBaseline)
}

func TestRebirthAffordable(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.rebirth.Affordable, "/api/v1/rebirth/affordable", AffordableRequest{
		PlayerKey: "p1",
		World:     "overworld",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[AffordableResponse](t, rec)
	assert.Equal(t, 0, resp.MaxAffordable)
	assert.Equal(t, "1000", resp.NextCost)
	assert.Equal(t, 0, resp.Rebirths)
	assert.Equal(t, "100", resp.Power)
}

func TestSell(t *testing.T) {
	env := newTestEnv(t)

	err := env.sessions.With(context.Background(), "p1", "overworld", func(s *extraction.Session) (bool, error) {
		return true, s.Ledger().AddResource("stone", 5)
	})
	require.NoError(t, err)

	rec := postJSON(t, env.market.Sell, "/api/v1/sell", SellRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Resource:  "stone",
		Quantity:  3,
		Bonuses:   []BonusPayload{{Category: "coin", Percent: 50, Source: "charm"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[SellResponse](t, rec)
	assert.Equal(t, "stone", resp.Resource)
	assert.Equal(t, int64(3), resp.Quantity)
	// 3 stone at value 2 under a x1.5 coin multiplier
	assert.Equal(t, int64(9), resp.GoldEarned)
	assert.Equal(t, int64(9), resp.Gold)

	err = env.sessions.With(context.Background(), "p1", "overworld", func(s *extraction.Session) (bool, error) {
		assert.Equal(t, int64(2), s.Ledger().Snapshot().Inventory["stone"])
		return false, nil
	})
	require.NoError(t, err)
}

func TestSellInsufficientQuantity(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.market.Sell, "/api/v1/sell", SellRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Resource:  "stone",
		Quantity:  1,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgInsufficientItemsErr, resp.Error)
}

func TestSellUnknownResource(t *testing.T) {
	env := newTestEnv(t)

	rec := postJSON(t, env.market.Sell, "/api/v1/sell", SellRequest{
		PlayerKey: "p1",
		World:     "overworld",
		Resource:  "mithril",
		Quantity:  1,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgUnknownResourceError, resp.Error)
}

func TestPlayerState(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player/state?player_key=p1&world=overworld", nil)
	rec := httptest.NewRecorder()
	env.player.State(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[PlayerStateResponse](t, rec)
	assert.Equal(t, "p1", resp.PlayerKey)
	assert.Equal(t, "overworld", resp.World)
	assert.Equal(t, 0, resp.Depth)
	assert.Equal(t, "100", resp.Power)
	assert.Equal(t, "100", resp.PowerAbbreviated)
	assert.Equal(t, 0, resp.Rebirths)
	assert.Equal(t, "stone", resp.Block.Resource)
}

func TestPlayerStateMissingKey(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/player/state", nil)
	rec := httptest.NewRecorder()
	env.player.State(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorlds(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worlds", nil)
	rec := httptest.NewRecorder()
	env.player.Worlds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[WorldsResponse](t, rec)
	assert.Equal(t, []string{"overworld"}, resp.Worlds)
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mine/hit", nil)
	rec := httptest.NewRecorder()
	env.mining.Hit(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
