package services

import (
	"bytes"
	"context"
	"testing"

	"cardoctor-backend/models"
	"cardoctor-backend/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDigestRun(t *testing.T) {
	store := repository.NewMemoryStore()
	orders := repository.NewMemoryOrders(store)
	ctx := context.Background()
	require.NoError(t, orders.Create(ctx, &models.ServiceOrder{Email: "a@x.com"}))
	require.NoError(t, orders.Create(ctx, &models.ServiceOrder{Email: "b@x.com"}))
	approved := models.ServiceOrder{Email: "c@x.com", Status: models.OrderStatusApproved}
	require.NoError(t, orders.Create(ctx, &approved))

	var buf bytes.Buffer
	digest := NewOrderDigest(orders, zerolog.New(&buf))
	digest.Run()

	assert.Contains(t, buf.String(), `"pending":2`)
	assert.Contains(t, buf.String(), "daily order digest")
}

func TestOrderDigestStartStop(t *testing.T) {
	digest := NewOrderDigest(repository.NewMemoryOrders(repository.NewMemoryStore()), zerolog.Nop())
	require.NoError(t, digest.Start())
	digest.Stop()
}
