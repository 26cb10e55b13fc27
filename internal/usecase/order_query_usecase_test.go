package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace_b2b/internal/domain/entities"
	mock_interfaces "marketplace_b2b/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderStatusUseCase_GetOrdersByStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderStatusUseCase(nil)
		_, err := uc.GetOrdersByStatus(context.Background(), ListOrdersInput{Status: "archived"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("defaults limit and offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		repo.EXPECT().List(gomock.Any(), entities.OrderFilter{Status: entities.OrderStatusPending}, 50, 0).
			Return([]entities.Order{{ID: "ord-1"}}, int64(73), nil)

		page, err := uc.GetOrdersByStatus(context.Background(), ListOrdersInput{Status: entities.OrderStatusPending})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 73 || len(page.Orders) != 1 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("date range needs both bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().List(gomock.Any(), entities.OrderFilter{Status: entities.OrderStatusShipped, CompanyID: "sup-1"}, 10, 20).
			Return(nil, int64(0), nil)

		_, err := uc.GetOrdersByStatus(context.Background(), ListOrdersInput{
			Status:      entities.OrderStatusShipped,
			CompanyID:   " sup-1 ",
			CreatedFrom: &from, // no CreatedTo: range is ignored
			Limit:       10,
			Offset:      20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("full filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)

		repo.EXPECT().List(gomock.Any(), gomock.Any(), 50, 0).DoAndReturn(
			func(_ context.Context, f entities.OrderFilter, _, _ int) ([]entities.Order, int64, error) {
				if f.CreatedFrom == nil || f.CreatedTo == nil {
					t.Fatalf("expected both range bounds, got %+v", f)
				}
				return nil, 0, nil
			},
		)

		_, err := uc.GetOrdersByStatus(context.Background(), ListOrdersInput{
			Status:      entities.OrderStatusDelivered,
			CreatedFrom: &from,
			CreatedTo:   &to,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any(), 50, 0).Return(nil, int64(0), errors.New("db"))

		if _, err := uc.GetOrdersByStatus(context.Background(), ListOrdersInput{Status: entities.OrderStatusPending}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrderStatusUseCase_GetOrderStatusStats(t *testing.T) {
	t.Run("missing statuses default to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.OrderStatus]int64{
			entities.OrderStatusPending:    5,
			entities.OrderStatusProcessing: 3,
			entities.OrderStatusDelivered:  10,
		}, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusDelivered).Return(nil, nil)

		stats, err := uc.GetOrderStatusStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalOrders != 18 {
			t.Fatalf("expected total 18, got %d", stats.TotalOrders)
		}
		if len(stats.StatusCounts) != 5 {
			t.Fatalf("expected all five statuses, got %v", stats.StatusCounts)
		}
		if stats.StatusCounts[entities.OrderStatusShipped] != 0 || stats.StatusCounts[entities.OrderStatusCancelled] != 0 {
			t.Fatalf("missing statuses must default to 0: %v", stats.StatusCounts)
		}
		if stats.AverageProcessingDays != 0 {
			t.Fatalf("no delivered rows must mean 0 average, got %f", stats.AverageProcessingDays)
		}
	})

	t.Run("average processing time in days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
		delivered := []entities.Order{
			{ID: "a", CreatedAt: base, UpdatedAt: base.AddDate(0, 0, 4)},
			{ID: "b", CreatedAt: base, UpdatedAt: base.AddDate(0, 0, 6)},
		}

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.OrderStatus]int64{entities.OrderStatusDelivered: 2}, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusDelivered).Return(delivered, nil)

		stats, err := uc.GetOrderStatusStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.AverageProcessingDays != 5 {
			t.Fatalf("expected average 5 days, got %f", stats.AverageProcessingDays)
		}
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.GetOrderStatusStats(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("delivered listing error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderStatusUseCase(repo)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.OrderStatus]int64{}, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusDelivered).Return(nil, errors.New("db"))

		if _, err := uc.GetOrderStatusStats(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
