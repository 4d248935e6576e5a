package model

// Review is one entry of the mentor wallet event log. The log lives in the
// key-value store under kib_reviews, append-only: reviews are never mutated
// or deleted, the wallet balance is derived as sum(score * 10).
type Review struct {
	ID    int64  `json:"id"`
	Score int    `json:"score"` // 1..10
	Note  string `json:"note"`
	Date  string `json:"date"`
}
