package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shkkonda/solana-portfolio/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWallet = "2TWoP4Jzgbpb1PRYUPj9BL5AdWwHECS9EWy6jaWroYM3"

type mockPortfolioService struct {
	GetPortfolioFunc func(ctx context.Context, walletAddress string) (*entity.PortfolioView, error)
	invalidations    int
}

func (m *mockPortfolioService) GetPortfolio(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
	return m.GetPortfolioFunc(ctx, walletAddress)
}

func (m *mockPortfolioService) InvalidateCache() {
	m.invalidations++
}

func serveRequest(t *testing.T, svc *mockPortfolioService, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewPortfolioHandler(svc, zap.NewNop())
	router := SetupRouter(handler, zap.NewNop())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetPortfolioHandler_Success(t *testing.T) {
	svc := &mockPortfolioService{
		GetPortfolioFunc: func(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
			assert.Equal(t, testWallet, walletAddress)
			return &entity.PortfolioView{
				WalletAddress: walletAddress,
				Summary:       entity.PortfolioSummary{TotalValueUSD: 305, AssetCount: 2},
			}, nil
		},
	}

	recorder := serveRequest(t, svc, http.MethodGet, "/api/v1/portfolio/"+testWallet)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response APIPortfolioResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Portfolio retrieved successfully.", response.StatusMessage)
	require.NotNil(t, response.Data.Portfolio)
	assert.Equal(t, testWallet, response.Data.Portfolio.WalletAddress)
	assert.Equal(t, 2, response.Data.Portfolio.Summary.AssetCount)
}

func TestGetPortfolioHandler_EmptyPortfolio(t *testing.T) {
	svc := &mockPortfolioService{
		GetPortfolioFunc: func(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
			return &entity.PortfolioView{WalletAddress: walletAddress}, nil
		},
	}

	recorder := serveRequest(t, svc, http.MethodGet, "/api/v1/portfolio/"+testWallet)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response APIPortfolioResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "No portfolio data found for this wallet address.", response.StatusMessage)
}

func TestGetPortfolioHandler_InvalidAddress(t *testing.T) {
	svc := &mockPortfolioService{
		GetPortfolioFunc: func(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
			t.Fatal("service must not be called for an invalid address")
			return nil, nil
		},
	}

	recorder := serveRequest(t, svc, http.MethodGet, "/api/v1/portfolio/not-a-wallet")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response APIErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "invalid wallet address", response.Error)
}

func TestGetPortfolioHandler_UpstreamFailure(t *testing.T) {
	svc := &mockPortfolioService{
		GetPortfolioFunc: func(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
			return nil, errors.New("helius is down")
		},
	}

	recorder := serveRequest(t, svc, http.MethodGet, "/api/v1/portfolio/"+testWallet)
	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var response APIErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Error)
	// Internals stay out of the client-facing message.
	assert.NotContains(t, response.Error, "helius is down")
}

func TestRefreshCacheHandler(t *testing.T) {
	svc := &mockPortfolioService{}

	recorder := serveRequest(t, svc, http.MethodPost, "/api/v1/cache/refresh")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, svc.invalidations)
}

func TestHealthzEndpoint(t *testing.T) {
	svc := &mockPortfolioService{}

	recorder := serveRequest(t, svc, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
