package quote_price

import "github.com/m04kA/SMC-TheatreBooking/internal/pricing"

// QuoteResponse итог и состав цены
type QuoteResponse struct {
	Total     int64          `json:"total"`
	Breakdown []pricing.Line `json:"breakdown"`
}

// NewQuoteResponse суммирует строки
func NewQuoteResponse(lines []pricing.Line) *QuoteResponse {
	resp := &QuoteResponse{Breakdown: lines}
	if resp.Breakdown == nil {
		resp.Breakdown = []pricing.Line{}
	}
	for _, line := range lines {
		resp.Total += line.Amount
	}
	return resp
}
