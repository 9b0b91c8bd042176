package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// InterfaceFungibleToken is the interface tag Helius assigns to fungible
// token assets. Items carrying any other tag have no token_info worth reading.
const InterfaceFungibleToken = "FungibleToken"

// AssetsByOwnerResponse is the JSON-RPC 2.0 envelope returned by the
// getAssetsByOwner method.
type AssetsByOwnerResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Result  *AssetsResult `json:"result"`
	Error   *RPCError     `json:"error"`
}

// RPCError is a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// AssetsResult is the result payload of getAssetsByOwner.
type AssetsResult struct {
	Total         int            `json:"total"`
	Limit         int            `json:"limit"`
	Page          int            `json:"page"`
	Items         []AssetItem    `json:"items"`
	NativeBalance *NativeBalance `json:"nativeBalance"`
}

// NativeBalance reports the wallet's SOL holding, priced separately from
// the fungible token items.
type NativeBalance struct {
	Amount     FlexUint  `json:"amount"`
	Decimals   FlexInt   `json:"decimals"`
	TotalPrice FlexFloat `json:"total_price"`
}

// AssetItem is a single owned asset. Every nested block is optional.
type AssetItem struct {
	Interface string        `json:"interface"`
	ID        string        `json:"id"`
	Content   *AssetContent `json:"content"`
	TokenInfo *TokenInfo    `json:"token_info"`
}

// AssetContent wraps the off-chain content block of an asset.
type AssetContent struct {
	Metadata *AssetMetadata `json:"metadata"`
}

// AssetMetadata carries the display name and ticker of an asset.
type AssetMetadata struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// TokenInfo carries the quantity and pricing of a fungible token.
type TokenInfo struct {
	Amount    FlexUint   `json:"amount"`
	Decimals  FlexInt    `json:"decimals"`
	PriceInfo *PriceInfo `json:"price_info"`
}

// PriceInfo carries the USD valuation of a token position.
type PriceInfo struct {
	PricePerToken FlexFloat `json:"price_per_token"`
	TotalPrice    FlexFloat `json:"total_price"`
	Currency      string    `json:"currency"`
}

// FlexFloat decodes a JSON value that should be a number but may arrive as a
// numeric string, null, or garbage. Anything unparseable leaves the field
// unset instead of failing the whole document.
type FlexFloat struct {
	Value float64
	Set   bool
}

// UnmarshalJSON never returns an error; malformed input is treated as absent.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Value, f.Set = 0, false
	v, ok := parseFlexNumber(data)
	if !ok {
		return nil
	}
	f.Value, f.Set = v, true
	return nil
}

// FlexUint is FlexFloat for non-negative integer quantities (raw token
// amounts in smallest units).
type FlexUint struct {
	Value uint64
	Set   bool
}

// UnmarshalJSON never returns an error; malformed or negative input is
// treated as absent. Integer literals are parsed without going through
// float64 so large raw amounts keep full precision.
func (u *FlexUint) UnmarshalJSON(data []byte) error {
	u.Value, u.Set = 0, false
	s, ok := cleanFlexToken(data)
	if !ok {
		return nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		u.Value, u.Set = n, true
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	u.Value, u.Set = uint64(v), true
	return nil
}

// FlexInt is FlexFloat for small non-negative integers (decimal scales).
type FlexInt struct {
	Value int
	Set   bool
}

// UnmarshalJSON never returns an error; malformed or negative input is
// treated as absent.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	i.Value, i.Set = 0, false
	v, ok := parseFlexNumber(data)
	if !ok || v < 0 {
		return nil
	}
	i.Value, i.Set = int(v), true
	return nil
}

func parseFlexNumber(data []byte) (float64, bool) {
	s, ok := cleanFlexToken(data)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cleanFlexToken(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return "", false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s, true
}
