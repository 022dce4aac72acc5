package admin

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

type Service struct {
	logger *slog.Logger
	store  storage.Storage
}

func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{logger: logger, store: store}
}

// Stats is the dashboard aggregate, computed at read time rather than
// stored. MonthlyRevenue mirrors TotalRevenue until per-month bucketing of
// payments lands.
type Stats struct {
	TotalMembers    int     `json:"totalMembers"`
	ActiveMembers   int     `json:"activeMembers"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveClasses   int     `json:"activeClasses"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	PoolUtilization int     `json:"poolUtilization"`
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return Stats{}, err
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return Stats{}, err
	}
	classes, err := s.store.ListClasses(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalMembers: len(members)}

	for _, m := range members {
		if m.Status == member.StatusActive {
			stats.ActiveMembers++
		}
	}

	for _, p := range payments {
		if p.PaymentStatus != enrollment.PaymentCompleted {
			continue
		}
		amount, err := strconv.ParseFloat(p.Amount, 64)
		if err != nil {
			s.logger.Warn("skipping payment with malformed amount", "payment_id", p.ID, "amount", p.Amount)
			continue
		}
		stats.TotalRevenue += amount
	}
	stats.MonthlyRevenue = stats.TotalRevenue

	// Utilization is current enrollment over capacity across active
	// classes, as a whole percentage.
	var enrolled, capacity int
	for _, c := range classes {
		if c.Status != "active" {
			continue
		}
		stats.ActiveClasses++
		enrolled += c.CurrentEnrollment
		capacity += c.Capacity
	}
	if capacity > 0 {
		stats.PoolUtilization = enrolled * 100 / capacity
	}

	return stats, nil
}
