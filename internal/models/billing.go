package models

// Subscription is the backend subscription row as listed on the
// subscriptions page. Timestamps are unix seconds.
type Subscription struct {
	ID        string `json:"id"`
	PlanName  string `json:"plan_name"`
	Status    string `json:"status"`
	StartDate int64  `json:"start_date"`
	EndDate   int64  `json:"end_date,omitempty"`
	AutoRenew bool   `json:"auto_renew"`
}

type Payment struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	CreatedAt     int64   `json:"created_at"`
}

// PaymentPage mirrors the backend's {data, count} pagination envelope.
type PaymentPage struct {
	Data  []Payment `json:"data"`
	Count int64     `json:"count"`
}

type PaymentListQuery struct {
	Page     int
	PageSize int
}

type PaymentListResult struct {
	Payments    []Payment `json:"payments"`
	TotalCount  int64     `json:"totalCount"`
	PageCount   int       `json:"pageCount"`
	CurrentPage int       `json:"currentPage"`
}
