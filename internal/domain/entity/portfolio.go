package entity

const (
	// OthersBucketName and OthersBucketSymbol label the synthetic chart
	// bucket that absorbs the long tail of low-value assets.
	OthersBucketName   = "Others"
	OthersBucketSymbol = "VARIOUS"
)

// PortfolioSummary is the headline pair shown above the asset table.
type PortfolioSummary struct {
	TotalValueUSD float64 `json:"totalValueUSD"`
	AssetCount    int     `json:"assetCount"`
}

// AssetRow is one display-formatted row of the portfolio table.
// Amount and ValueUSD are presentation strings; the raw numbers live on Asset.
type AssetRow struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Amount   string `json:"amount"`
	ValueUSD string `json:"valueUSD"`
}

// ChartBucket is one (label, value) slice of the proportion chart.
type ChartBucket struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	TotalValueUSD float64 `json:"totalValueUSD"`
}

// PortfolioView is the full per-request projection of a wallet: the
// normalized assets plus everything the presentation layer renders.
// It is rebuilt on every fetch cycle and never persisted.
type PortfolioView struct {
	WalletAddress string           `json:"walletAddress"`
	Summary       PortfolioSummary `json:"summary"`
	Assets        []Asset          `json:"assets"`
	Rows          []AssetRow       `json:"rows"`
	ChartBuckets  []ChartBucket    `json:"chartBuckets"`
}
