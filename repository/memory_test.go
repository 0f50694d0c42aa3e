package repository

import (
	"context"
	"testing"

	"cardoctor-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryServices(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	service := models.Service{
		ServiceID:   "svc-01",
		Title:       "Engine Oil Change",
		Price:       20,
		Img:         "https://example.com/oil.jpg",
		Description: "full synthetic",
		Facility:    models.JSONB{{"name": "pickup"}},
	}
	require.NoError(t, store.Create(ctx, &service))
	require.NotEqual(t, uuid.Nil, service.ID)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Engine Oil Change", list[0].Title)

	detail, err := store.GetByID(ctx, service.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceDetail{Title: "Engine Oil Change", Price: 20, Img: "https://example.com/oil.jpg"}, *detail)

	_, err = store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := store.FindByFingerprint(ctx, "svc-01", "Engine Oil Change", 20)
	require.NoError(t, err)
	assert.Equal(t, service.ID, found.ID)

	_, err = store.FindByFingerprint(ctx, "svc-01", "Engine Oil Change", 25)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryOrders(t *testing.T) {
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)
	ctx := context.Background()

	mine := models.ServiceOrder{Email: "a@x.com", CustomerName: "Alice", Phone: "123", Price: 20}
	theirs := models.ServiceOrder{Email: "b@x.com", CustomerName: "Bob"}
	require.NoError(t, orders.Create(ctx, &mine))
	require.NoError(t, orders.Create(ctx, &theirs))
	assert.Equal(t, models.OrderStatusPending, mine.Status)

	list, err := orders.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].CustomerName)

	result, err := orders.SetStatus(ctx, mine.ID, models.OrderStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	// status is the only field that moved
	list, err = orders.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.OrderStatusApproved, list[0].Status)
	assert.Equal(t, "Alice", list[0].CustomerName)
	assert.Equal(t, "123", list[0].Phone)
	assert.Equal(t, float64(20), list[0].Price)

	count, err := orders.CountByStatus(ctx, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := orders.Delete(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	deleted, err = orders.Delete(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted.DeletedCount)
}

func TestMemorySetStatusMissingOrder(t *testing.T) {
	orders := NewMemoryOrders(NewMemoryStore())

	result, err := orders.SetStatus(context.Background(), uuid.New(), models.OrderStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
}
