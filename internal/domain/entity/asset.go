package entity

import "math"

const (
	// NativeAssetName and NativeAssetSymbol label the wallet's SOL row.
	NativeAssetName   = "Solana"
	NativeAssetSymbol = "SOL"

	// NativeDecimals is the lamports-per-SOL scale used when the payload
	// omits the native balance's decimals.
	NativeDecimals = 9

	// UnknownName is substituted when an asset's metadata block is missing.
	UnknownName = "Unknown"
)

// Asset is a single valued position in a wallet, immutable once constructed.
// Zero values are the documented defaults for absent source fields.
type Asset struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	TotalValueUSD float64 `json:"totalValueUSD"`
	RawAmount     uint64  `json:"rawAmount"`
	Decimals      int     `json:"decimals"`
	Native        bool    `json:"native"`
}

// DisplayAmount converts the smallest-unit quantity to a human quantity.
// It is always derived, never stored.
func (a Asset) DisplayAmount() float64 {
	return float64(a.RawAmount) / math.Pow10(a.Decimals)
}
