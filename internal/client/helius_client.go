package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shkkonda/solana-portfolio/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const assetsByOwnerMethod = "getAssetsByOwner"

// HeliusClient defines the interface for fetching a wallet's assets from the
// Helius DAS API.
type HeliusClient interface {
	// GetAssetsByOwner returns the asset list for a wallet. A nil result
	// with a nil error means the upstream answered without a result field;
	// callers treat it as an empty portfolio.
	GetAssetsByOwner(ctx context.Context, ownerAddress string) (*entity.AssetsResult, error)
}

// heliusClientImpl is the implementation of HeliusClient.
type heliusClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewHeliusClient creates a new instance of heliusClientImpl.
func NewHeliusClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) HeliusClient {
	return &heliusClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger.Named("HeliusClient"),
	}
}

// rpcRequest is the JSON-RPC 2.0 envelope sent to Helius.
type rpcRequest struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      string              `json:"id"`
	Method  string              `json:"method"`
	Params  assetsByOwnerParams `json:"params"`
}

type assetsByOwnerParams struct {
	OwnerAddress string       `json:"ownerAddress"`
	Options      assetOptions `json:"options"`
}

type assetOptions struct {
	ShowZeroBalance   bool `json:"showZeroBalance"`
	ShowNativeBalance bool `json:"showNativeBalance"`
	ShowFungible      bool `json:"showFungible"`
}

// GetAssetsByOwner implements the HeliusClient interface.
func (c *heliusClientImpl) GetAssetsByOwner(ctx context.Context, ownerAddress string) (*entity.AssetsResult, error) {
	if ownerAddress == "" {
		return nil, fmt.Errorf("ownerAddress cannot be empty")
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "1",
		Method:  assetsByOwnerMethod,
		Params: assetsByOwnerParams{
			OwnerAddress: ownerAddress,
			Options: assetOptions{
				ShowZeroBalance:   false,
				ShowNativeBalance: true,
				ShowFungible:      true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", assetsByOwnerMethod, err)
	}

	// The key travels as a query parameter; keep it out of log output.
	requestURL := fmt.Sprintf("%s/?api-key=%s", c.baseURL, c.apiKey)

	c.logger.Debug("Requesting assets from Helius",
		zap.String("baseURL", c.baseURL),
		zap.String("ownerAddress", ownerAddress))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			c.logger.Error("Failed to execute request to Helius", zap.String("baseURL", c.baseURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s: %w", c.baseURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			c.logger.Error("Failed to execute request to Helius (with default timeout)", zap.String("baseURL", c.baseURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", c.baseURL, err)
		}
	}

	rawBody := resp.Body()

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Helius API request failed",
			zap.String("baseURL", c.baseURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody),
		)
		return nil, fmt.Errorf("helius API request to %s failed with status %d: %s", c.baseURL, resp.StatusCode(), string(rawBody))
	}

	var envelope entity.AssetsByOwnerResponse
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		c.logger.Error("Failed to unmarshal Helius response",
			zap.String("baseURL", c.baseURL),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to unmarshal Helius response from %s: %w", c.baseURL, err)
	}

	if envelope.Error != nil {
		c.logger.Error("Helius returned an RPC error",
			zap.Int("code", envelope.Error.Code),
			zap.String("message", envelope.Error.Message))
		return nil, fmt.Errorf("helius RPC call %s failed: %w", assetsByOwnerMethod, envelope.Error)
	}

	if envelope.Result == nil {
		c.logger.Warn("Helius returned 200 OK without a result field. Treating as empty portfolio.",
			zap.String("ownerAddress", ownerAddress))
		return nil, nil
	}

	c.logger.Debug("Successfully unmarshalled Helius response",
		zap.String("ownerAddress", ownerAddress),
		zap.Int("itemCount", len(envelope.Result.Items)))
	return envelope.Result, nil
}
