package service

import (
	"github.com/shkkonda/solana-portfolio/internal/domain/entity"
	"github.com/shkkonda/solana-portfolio/internal/pkg/utils"
)

// SummarizeAssets computes the headline metrics over a normalized sequence.
// Sums are kept at full float precision; rounding happens only at display
// formatting.
func SummarizeAssets(assets []entity.Asset) entity.PortfolioSummary {
	summary := entity.PortfolioSummary{AssetCount: len(assets)}
	for _, a := range assets {
		summary.TotalValueUSD += a.TotalValueUSD
	}
	return summary
}

// BuildAssetRows renders the display table: amount as a fixed 4-decimal
// quantity, value as a 2-decimal currency string.
func BuildAssetRows(assets []entity.Asset) []entity.AssetRow {
	rows := make([]entity.AssetRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, entity.AssetRow{
			Name:     a.Name,
			Symbol:   a.Symbol,
			Amount:   utils.FormatTokenAmount(a.RawAmount, a.Decimals),
			ValueUSD: utils.FormatUSD(a.TotalValueUSD),
		})
	}
	return rows
}

// BuildChartBuckets prepares the proportion-chart input. Assets worth less
// than othersShare of the total collapse into a single "Others" bucket
// appended after the remaining assets, which keep their normalized order.
// With a zero total the threshold is zero, no asset is below it, and the
// sequence passes through unchanged.
func BuildChartBuckets(assets []entity.Asset, othersShare float64) []entity.ChartBucket {
	if len(assets) == 0 {
		return nil
	}

	threshold := SummarizeAssets(assets).TotalValueUSD * othersShare

	buckets := make([]entity.ChartBucket, 0, len(assets))
	var othersTotal float64
	var haveOthers bool

	for _, a := range assets {
		if a.TotalValueUSD < threshold {
			othersTotal += a.TotalValueUSD
			haveOthers = true
			continue
		}
		buckets = append(buckets, entity.ChartBucket{
			Name:          a.Name,
			Symbol:        a.Symbol,
			TotalValueUSD: a.TotalValueUSD,
		})
	}

	if haveOthers {
		buckets = append(buckets, entity.ChartBucket{
			Name:          entity.OthersBucketName,
			Symbol:        entity.OthersBucketSymbol,
			TotalValueUSD: othersTotal,
		})
	}

	return buckets
}
