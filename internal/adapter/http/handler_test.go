package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

// stubCampaigns implements only the methods a test exercises; anything else
// panics through the embedded nil interface.
type stubCampaigns struct {
	port.CampaignUseCase
	getFn    func(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error)
	createFn func(ctx context.Context, caller domain.Caller, req port.CreateCampaignReq) (*domain.Campaign, error)
}

func (s *stubCampaigns) Get(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubCampaigns) Create(ctx context.Context, caller domain.Caller, req port.CreateCampaignReq) (*domain.Campaign, error) {
	return s.createFn(ctx, caller, req)
}

func newTestHandler(campaigns port.CampaignUseCase) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caller := domain.Caller{UserID: uuid.New()}
	return NewHandler(campaigns, nil, nil, caller, logger)
}

func TestGetCampaignSuccessEnvelope(t *testing.T) {
	now := time.Now().UTC()
	campaign := &domain.Campaign{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Spring Sale",
		Budget:    decimal.NewFromInt(250),
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	h := newTestHandler(&stubCampaigns{
		getFn: func(_ context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error) {
			assert.Equal(t, campaign.ID, id)
			assert.NotEqual(t, uuid.Nil, caller.UserID)
			return campaign, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+campaign.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Campaign campaignView `json:"campaign"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, campaign.ID.String(), body.Data.Campaign.ID)
	assert.Equal(t, "Spring Sale", body.Data.Campaign.Name)
}

func TestErrorEnvelopeStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation maps to 400",
			err:      domain.Validationf("bid must be greater than zero"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bid must be greater than zero",
		},
		{
			name:     "not found maps to 404",
			err:      &domain.NotFoundError{Entity: "campaign", ID: "x"},
			wantCode: http.StatusNotFound,
			wantMsg:  "campaign x not found",
		},
		{
			name:     "conflict maps to 409",
			err:      &domain.ConflictError{Msg: "name already in use"},
			wantCode: http.StatusConflict,
			wantMsg:  "name already in use",
		},
		{
			name:     "unknown errors are not leaked",
			err:      io.ErrUnexpectedEOF,
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubCampaigns{
				getFn: func(context.Context, domain.Caller, uuid.UUID) (*domain.Campaign, error) {
					return nil, tt.err
				},
			})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+uuid.NewString(), nil)
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			var body struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestInvalidPathIDRejected(t *testing.T) {
	h := newTestHandler(&stubCampaigns{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCampaignDecodesDecimalBudget(t *testing.T) {
	h := newTestHandler(&stubCampaigns{
		createFn: func(_ context.Context, caller domain.Caller, req port.CreateCampaignReq) (*domain.Campaign, error) {
			assert.True(t, req.Budget.Equal(decimal.RequireFromString("99.95")))
			now := time.Now().UTC()
			return &domain.Campaign{
				ID:        uuid.New(),
				OwnerID:   caller.UserID,
				Name:      req.Name,
				Budget:    req.Budget,
				Status:    domain.StatusActive,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/",
		strings.NewReader(`{"name":"Launch","budget":"99.95"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}
