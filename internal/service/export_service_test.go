package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"orionpos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportFixture() (*stubProductRepo, *stubMovementRepo, *stubClientRepo, ExportService) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	sales := newStubSaleRepo()
	clients := newStubClientRepo()
	return products, movements, clients, NewExportService(products, movements, sales, clients)
}

func TestExportProductsCSV(t *testing.T) {
	products, _, _, svc := newExportFixture()
	barcode := "123"
	products.add(&model.Product{
		Name: "Coffee", Category: "Drinks",
		PurchasePrice: price("2.10"), SalePrice: price("3.50"),
		Quantity: 7, MinStock: 2, Barcode: &barcode,
	})

	out, err := svc.Products(context.Background())
	require.NoError(t, err)

	// Spreadsheet apps want the UTF-8 BOM up front.
	require.True(t, bytes.HasPrefix(out, []byte("\uFEFF")))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"name", "category", "purchase_price", "sale_price", "quantity", "min_stock", "barcode"}, records[0])
	assert.Equal(t, []string{"Coffee", "Drinks", "2.10", "3.50", "7", "2", "123"}, records[1])
}

func TestExportMovementsCSV(t *testing.T) {
	products, movements, _, svc := newExportFixture()
	p := products.add(&model.Product{Name: "Tea"})
	require.NoError(t, movements.Create(context.Background(), &model.StockMovement{
		ProductID: p.ID, ProductName: "Tea", Direction: model.DirectionEntry, Quantity: 4, Reason: "replenishment",
	}))

	out, err := svc.Movements(context.Background(), "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Tea", records[1][1])
	assert.Equal(t, "entry", records[1][2])
	assert.Equal(t, "4", records[1][3])
}

func TestExportClientsCSV(t *testing.T) {
	_, _, clients, svc := newExportFixture()
	require.NoError(t, clients.Create(context.Background(), &model.Client{
		Name: "Ana", Phone: "555-2222", Email: "ana@example.com",
	}))

	out, err := svc.Clients(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana", records[1][0])
}
