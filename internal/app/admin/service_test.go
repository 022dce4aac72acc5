package admin

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage/memstore"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

func TestStats(t *testing.T) {
	store := memstore.New()
	svc := New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	active, err := store.CreateMember(ctx, member.New(10, "Active", "01000000000", 20, "beginner", "adult", nil, nil))
	require.NoError(t, err)

	inactive, err := store.CreateMember(ctx, member.New(11, "Inactive", "01000000001", 22, "beginner", "adult", nil, nil))
	require.NoError(t, err)
	status := member.StatusInactive
	_, err = store.UpdateMember(ctx, inactive.ID, member.Update{Status: &status})
	require.NoError(t, err)

	_, err = store.CreatePayment(ctx, enrollment.NewPayment(active.ID, "1200", "card", enrollment.PaymentCompleted, nil, nil))
	require.NoError(t, err)
	_, err = store.CreatePayment(ctx, enrollment.NewPayment(active.ID, "800.50", "cash", enrollment.PaymentCompleted, nil, nil))
	require.NoError(t, err)
	// Pending payments do not count toward revenue.
	_, err = store.CreatePayment(ctx, enrollment.NewPayment(active.ID, "999", "card", enrollment.PaymentPending, nil, nil))
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalMembers)
	assert.Equal(t, 1, stats.ActiveMembers)
	assert.InDelta(t, 2000.50, stats.TotalRevenue, 0.001)
	assert.Equal(t, stats.TotalRevenue, stats.MonthlyRevenue)

	// Seeded schedule: two active classes, 9 of 14 spots filled.
	assert.Equal(t, 2, stats.ActiveClasses)
	assert.Equal(t, 64, stats.PoolUtilization)
}
