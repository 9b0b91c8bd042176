package service

import (
	"github.com/shkkonda/solana-portfolio/internal/domain/entity"
	helius_types "github.com/shkkonda/solana-portfolio/internal/entity"
)

// NormalizeAssets converts a raw getAssetsByOwner result into the uniform
// asset sequence the aggregator works on. It never fails: a nil result yields
// an empty sequence and any missing or malformed field falls back to its
// documented default.
//
// The native SOL balance, when present, is always the first element and is
// exempt from the dust filter; non-native items are included only when their
// USD value is strictly greater than dustThresholdUSD.
func NormalizeAssets(result *helius_types.AssetsResult, dustThresholdUSD float64) []entity.Asset {
	if result == nil {
		return []entity.Asset{}
	}

	assets := make([]entity.Asset, 0, len(result.Items)+1)

	if nb := result.NativeBalance; nb != nil {
		decimals := entity.NativeDecimals
		if nb.Decimals.Set {
			decimals = nb.Decimals.Value
		}
		assets = append(assets, entity.Asset{
			Name:          entity.NativeAssetName,
			Symbol:        entity.NativeAssetSymbol,
			TotalValueUSD: nb.TotalPrice.Value,
			RawAmount:     nb.Amount.Value,
			Decimals:      decimals,
			Native:        true,
		})
	}

	for _, item := range result.Items {
		asset := normalizeItem(item)
		if asset.TotalValueUSD > dustThresholdUSD {
			assets = append(assets, asset)
		}
	}

	return assets
}

// normalizeItem maps one asset item to a fully-defaulted Asset. Items whose
// interface is not the fungible-token marker keep zero amount, decimals and
// value; only name and symbol are available for them.
func normalizeItem(item helius_types.AssetItem) entity.Asset {
	asset := entity.Asset{
		Name:   entity.UnknownName,
		Symbol: entity.UnknownName,
	}

	if item.Content != nil && item.Content.Metadata != nil {
		if item.Content.Metadata.Name != "" {
			asset.Name = item.Content.Metadata.Name
		}
		if item.Content.Metadata.Symbol != "" {
			asset.Symbol = item.Content.Metadata.Symbol
		}
	}

	if item.Interface == helius_types.InterfaceFungibleToken && item.TokenInfo != nil {
		asset.RawAmount = item.TokenInfo.Amount.Value
		asset.Decimals = item.TokenInfo.Decimals.Value
		if pi := item.TokenInfo.PriceInfo; pi != nil {
			asset.TotalValueUSD = pi.TotalPrice.Value
		}
	}

	return asset
}
