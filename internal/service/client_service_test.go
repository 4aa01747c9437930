package service

import (
	"context"
	"testing"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFixture() (*stubClientRepo, *stubSaleRepo, ClientService) {
	clients := newStubClientRepo()
	sales := newStubSaleRepo()
	return clients, sales, NewClientService(clients, sales)
}

func TestClientCreateAndGet(t *testing.T) {
	_, sales, svc := newClientFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateClientRequest{
		Name: "Ana", Phone: "555-1234", Email: "ana@example.com",
	})
	require.NoError(t, err)

	clientID, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	// Purchase history rides along on the detail view.
	sale := &model.Sale{
		ID:            uuid.New(),
		InvoiceNumber: "INV-20260101-100000",
		ClientID:      &clientID,
		Total:         price("9.99"),
		Subtotal:      price("9.99"),
		PaymentMethod: "cash",
		CreatedAt:     time.Now(),
	}
	sales.sales[sale.ID] = sale

	detail, err := svc.Get(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", detail.Name)
	require.Len(t, detail.Sales, 1)
	assert.Equal(t, "INV-20260101-100000", detail.Sales[0].InvoiceNumber)
}

func TestClientGetNotFound(t *testing.T) {
	_, _, svc := newClientFixture()
	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}
