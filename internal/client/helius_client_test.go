package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOwner = "2TWoP4Jzgbpb1PRYUPj9BL5AdWwHECS9EWy6jaWroYM3"

func newTestClient(serverURL string) HeliusClient {
	return NewHeliusClient(serverURL, "test-key", 2*time.Second, zap.NewNop())
}

func TestGetAssetsByOwner_SendsWellFormedRequest(t *testing.T) {
	var capturedQuery string
	var capturedBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.RawQuery
		capturedBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"total":0,"items":[]}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).GetAssetsByOwner(context.Background(), testOwner)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "api-key=test-key", capturedQuery)

	var sent rpcRequest
	require.NoError(t, json.Unmarshal(capturedBody, &sent))
	assert.Equal(t, "2.0", sent.JSONRPC)
	assert.Equal(t, assetsByOwnerMethod, sent.Method)
	assert.Equal(t, testOwner, sent.Params.OwnerAddress)
	assert.False(t, sent.Params.Options.ShowZeroBalance)
	assert.True(t, sent.Params.Options.ShowNativeBalance)
	assert.True(t, sent.Params.Options.ShowFungible)
}

func TestGetAssetsByOwner_ParsesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": "1",
			"result": {
				"total": 1,
				"items": [{"interface": "FungibleToken", "id": "mint1"}],
				"nativeBalance": {"amount": 2000000000, "decimals": 9, "total_price": 300}
			}
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).GetAssetsByOwner(context.Background(), testOwner)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "mint1", result.Items[0].ID)
	require.NotNil(t, result.NativeBalance)
	assert.Equal(t, uint64(2_000_000_000), result.NativeBalance.Amount.Value)
}

func TestGetAssetsByOwner_EmptyOwnerIsRejectedLocally(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	result, err := client.GetAssetsByOwner(context.Background(), "")
	assert.Nil(t, result)
	require.Error(t, err)
}

func TestGetAssetsByOwner_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).GetAssetsByOwner(context.Background(), testOwner)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGetAssetsByOwner_RPCErrorIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32602,"message":"Invalid params"}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).GetAssetsByOwner(context.Background(), testOwner)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid params")
}

func TestGetAssetsByOwner_MissingResultMeansEmptyPortfolio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).GetAssetsByOwner(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Nil(t, result)
}
