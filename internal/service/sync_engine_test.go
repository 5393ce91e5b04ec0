// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/mock"
	"github.com/staffly/offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSyncConfig() config.ClientSync {
	return config.ClientSync{
		Interval:    30 * time.Second,
		AutoSync:    true,
		MaxRetries:  3,
		BackoffBase: time.Millisecond,
	}
}

func newTestEngine(t *testing.T, ctrl *gomock.Controller) (*syncEngine, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	engine := NewSyncEngine(mockAdapter, testSyncConfig(), logger.Nop()).(*syncEngine)
	return engine, mockAdapter
}

func punchOp(id string) models.PendingOperation {
	return models.PendingOperation{
		ID:   id,
		Type: models.OperationTimePunch,
		Data: json.RawMessage(`{"punch_type":"clock_in"}`),
	}
}

// ── SyncOperations ───────────────────────────────────────────────────────────

func TestSyncEngine_SyncOperations_DispatchesByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	ops := []models.PendingOperation{
		{ID: "op-1", Type: models.OperationTimePunch, Data: json.RawMessage(`{"punch_type":"clock_in"}`)},
		{ID: "op-2", Type: models.OperationCorrectionRequest, Data: json.RawMessage(`{"entry_id":9}`)},
		{ID: "op-3", Type: models.OperationProfileUpdate, Data: json.RawMessage(`{"user_id":7,"phone":"555"}`)},
		{ID: "op-4", Type: models.OperationGenericAPI, Method: http.MethodDelete, Endpoint: "/api/notes/3"},
	}

	mockAdapter.EXPECT().SubmitPunch(ctx, ops[0].Data).Return(json.RawMessage(`{"id":1}`), nil)
	mockAdapter.EXPECT().SubmitCorrection(ctx, ops[1].Data).Return(json.RawMessage(`{"id":2}`), nil)
	mockAdapter.EXPECT().UpdateProfile(ctx, int64(7), ops[2].Data).Return(json.RawMessage(`{}`), nil)
	mockAdapter.EXPECT().Call(ctx, http.MethodDelete, "/api/notes/3", nil).Return(nil, nil)

	results := engine.SyncOperations(ctx, ops)
	require.Len(t, results, 4)
	for i, res := range results {
		assert.Equal(t, ops[i].ID, res.OperationID, "results keep input order")
		assert.True(t, res.Success)
	}
	assert.JSONEq(t, `{"id":1}`, string(results[0].Result))
}

func TestSyncEngine_SyncOperations_FailureDoesNotAbortRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	ops := []models.PendingOperation{punchOp("op-1"), punchOp("op-2"), punchOp("op-3")}

	gomock.InOrder(
		mockAdapter.EXPECT().SubmitPunch(ctx, gomock.Any()).Return(json.RawMessage(`{}`), nil),
		mockAdapter.EXPECT().SubmitPunch(ctx, gomock.Any()).Return(nil, &adapter.HTTPError{StatusCode: http.StatusBadGateway, Message: "boom"}),
		mockAdapter.EXPECT().SubmitPunch(ctx, gomock.Any()).Return(json.RawMessage(`{}`), nil),
	)

	results := engine.SyncOperations(ctx, ops)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)

	assert.False(t, results[1].Permanent, "502 is transient")
	assert.Contains(t, results[1].Error, "boom")
}

func TestSyncEngine_SyncOperations_PermanentClassification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	tests := []struct {
		name          string
		err           error
		wantPermanent bool
	}{
		{name: "422 validation", err: &adapter.HTTPError{StatusCode: http.StatusUnprocessableEntity}, wantPermanent: true},
		{name: "429 throttled", err: &adapter.HTTPError{StatusCode: http.StatusTooManyRequests}, wantPermanent: false},
		{name: "408 request timeout", err: &adapter.HTTPError{StatusCode: http.StatusRequestTimeout}, wantPermanent: false},
		{name: "503 unavailable", err: &adapter.HTTPError{StatusCode: http.StatusServiceUnavailable}, wantPermanent: false},
		{name: "transport failure", err: errors.New("dial tcp: connection refused"), wantPermanent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdapter.EXPECT().SubmitPunch(ctx, gomock.Any()).Return(nil, tt.err)

			results := engine.SyncOperations(ctx, []models.PendingOperation{punchOp("op-1")})
			require.Len(t, results, 1)
			assert.False(t, results[0].Success)
			assert.Equal(t, tt.wantPermanent, results[0].Permanent)
		})
	}
}

func TestSyncEngine_SyncOperations_UnknownTypeIsPermanent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(t, ctrl)

	results := engine.SyncOperations(t.Context(), []models.PendingOperation{
		{ID: "op-1", Type: "LEGACY_THING", Data: json.RawMessage(`{}`)},
	})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.True(t, results[0].Permanent)
	assert.Contains(t, results[0].Error, "unknown operation type")
}

func TestSyncEngine_SyncOperations_ProfileUpdateFallsBackToToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "77"}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)

	data := json.RawMessage(`{"phone":"555"}`)
	mockAdapter.EXPECT().Token().Return(token)
	mockAdapter.EXPECT().UpdateProfile(ctx, int64(77), data).Return(json.RawMessage(`{}`), nil)

	results := engine.SyncOperations(ctx, []models.PendingOperation{
		{ID: "op-1", Type: models.OperationProfileUpdate, Data: data},
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

// ── PrioritySync ─────────────────────────────────────────────────────────────

func TestSyncEngine_PrioritySync_OrdersByCriticality(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	ops := []models.PendingOperation{
		{ID: "generic-1", Type: models.OperationGenericAPI, Method: http.MethodGet, Endpoint: "/api/me"},
		{ID: "profile-1", Type: models.OperationProfileUpdate, Data: json.RawMessage(`{"user_id":7}`)},
		{ID: "punch-1", Type: models.OperationTimePunch, Data: json.RawMessage(`{}`)},
		{ID: "correction-1", Type: models.OperationCorrectionRequest, Data: json.RawMessage(`{}`)},
		{ID: "punch-2", Type: models.OperationTimePunch, Data: json.RawMessage(`{}`)},
	}

	mockAdapter.EXPECT().SubmitPunch(ctx, gomock.Any()).Return(nil, nil).Times(2)
	mockAdapter.EXPECT().SubmitCorrection(ctx, gomock.Any()).Return(nil, nil)
	mockAdapter.EXPECT().UpdateProfile(ctx, int64(7), gomock.Any()).Return(nil, nil)
	mockAdapter.EXPECT().Call(ctx, http.MethodGet, "/api/me", nil).Return(nil, nil)

	results := engine.PrioritySync(ctx, ops)
	require.Len(t, results, 5)

	got := make([]string, 0, len(results))
	for _, res := range results {
		got = append(got, res.OperationID)
	}

	// Punches first in their original relative order, generic calls last.
	assert.Equal(t, []string{"punch-1", "punch-2", "correction-1", "profile-1", "generic-1"}, got)
	assert.Equal(t, "generic-1", ops[0].ID, "input slice is not reordered")
}

// ── BatchSyncWithRetry ───────────────────────────────────────────────────────

func TestSyncEngine_BatchSyncWithRetry_TransientRetriedUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()
	ops := []models.PendingOperation{punchOp("op-1")}

	gomock.InOrder(
		mockAdapter.EXPECT().SubmitBatch(ctx, ops).Return(&adapter.HTTPError{StatusCode: http.StatusServiceUnavailable}),
		mockAdapter.EXPECT().SubmitBatch(ctx, ops).Return(&adapter.HTTPError{StatusCode: http.StatusServiceUnavailable}),
		mockAdapter.EXPECT().SubmitBatch(ctx, ops).Return(nil),
	)

	require.NoError(t, engine.BatchSyncWithRetry(ctx, ops))
}

func TestSyncEngine_BatchSyncWithRetry_PermanentAbortsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()
	ops := []models.PendingOperation{punchOp("op-1")}

	httpErr := &adapter.HTTPError{StatusCode: http.StatusUnprocessableEntity, Message: "bad payload"}
	mockAdapter.EXPECT().SubmitBatch(ctx, ops).Return(httpErr).Times(1)

	err := engine.BatchSyncWithRetry(ctx, ops)
	require.Error(t, err)

	var gotErr *adapter.HTTPError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, http.StatusUnprocessableEntity, gotErr.StatusCode)
}

func TestSyncEngine_BatchSyncWithRetry_RetryBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()
	ops := []models.PendingOperation{punchOp("op-1")}

	// Initial attempt plus MaxRetries retries.
	mockAdapter.EXPECT().
		SubmitBatch(ctx, ops).
		Return(&adapter.HTTPError{StatusCode: http.StatusBadGateway}).
		Times(4)

	require.Error(t, engine.BatchSyncWithRetry(ctx, ops))
}

func TestSyncEngine_BatchSyncWithRetry_EmptySetIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _ := newTestEngine(t, ctrl)
	require.NoError(t, engine.BatchSyncWithRetry(t.Context(), nil))
}

func TestSyncEngine_Backoff_ExponentialSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	cfg := testSyncConfig()
	cfg.BackoffBase = time.Second
	engine := NewSyncEngine(mockAdapter, cfg, logger.Nop()).(*syncEngine)

	b := engine.backoff()
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	for i, expected := range want {
		delay, stop := b.Next()
		require.False(t, stop, "retry %d must be allowed", i+1)
		assert.Equal(t, expected, delay)
	}

	_, stop := b.Next()
	assert.True(t, stop, "budget of three retries is exhausted")
}

// ── CheckConnectivity ────────────────────────────────────────────────────────

func TestSyncEngine_CheckConnectivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockAdapter := newTestEngine(t, ctrl)
	ctx := t.Context()

	mockAdapter.EXPECT().Health(ctx).Return(nil)
	assert.True(t, engine.CheckConnectivity(ctx))

	mockAdapter.EXPECT().Health(ctx).Return(errors.New("dial tcp: connection refused"))
	assert.False(t, engine.CheckConnectivity(ctx))
}
