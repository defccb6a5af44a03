package sales

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalesMetadata aggregates a set of sales.
type SalesMetadata struct {
	Quantity    int             `json:"quantity"`
	Active      int             `json:"active"`
	Cancelled   int             `json:"cancelled"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Summarize counts the sales matching filter. TotalAmount only includes
// sales that are not cancelled.
func (s *Service) Summarize(filter ListFilter) (SalesMetadata, error) {
	matched, err := s.ListSales(filter)
	if err != nil {
		return SalesMetadata{}, err
	}

	metadata := SalesMetadata{TotalAmount: decimal.Zero}
	for _, sale := range matched {
		metadata.Quantity++
		if sale.Cancelled {
			metadata.Cancelled++
			continue
		}
		metadata.Active++
		metadata.TotalAmount = metadata.TotalAmount.Add(sale.TotalSaleAmount)
	}

	s.logger.Info("sales summary computed",
		zap.String("customer_filter", filter.Customer),
		zap.String("branch_filter", filter.Branch),
		zap.Any("metadata", metadata),
	)
	return metadata, nil
}
