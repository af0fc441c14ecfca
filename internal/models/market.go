package models

// Prices - рыночные цены монет в USD
type Prices struct {
	Bitcoin     float64 `json:"bitcoin"`
	Ethereum    float64 `json:"ethereum"`
	Binancecoin float64 `json:"binancecoin"`
	Solana      float64 `json:"solana"`
}

// WalletBalance - балансы кошелька в сети BSC
type WalletBalance struct {
	Address string  `json:"address"`
	BNB     float64 `json:"bnb"`
	USDT    float64 `json:"usdt"`
}
