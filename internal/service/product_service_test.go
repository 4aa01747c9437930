package service

import (
	"context"
	"testing"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*stubProductRepo, *stubMovementRepo, ProductService) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	stock := NewStockService(movements, products)
	return products, movements, NewProductService(products, movements, stock, nil)
}

func TestCreateProductSeedsInitialStock(t *testing.T) {
	products, movements, svc := newProductFixture()
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, dto.CreateProductRequest{
		Name:      "Olive Oil",
		Category:  "Pantry",
		SalePrice: price("8.99"),
		Quantity:  12,
		MinStock:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Quantity)

	all := movements.all()
	require.Len(t, all, 1)
	assert.Equal(t, model.DirectionEntry, all[0].Direction)
	assert.Equal(t, 12, all[0].Quantity)
	assert.Equal(t, "initial stock", all[0].Reason)
	assert.Equal(t, "Olive Oil", all[0].ProductName)
	assert.Equal(t, userID, all[0].UserID)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, products.products[id].Quantity)
}

func TestCreateProductZeroQuantityWritesNoMovement(t *testing.T) {
	_, movements, svc := newProductFixture()

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateProductRequest{
		Name:      "Empty Shelf",
		SalePrice: price("1.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Quantity)
	assert.Empty(t, movements.all())
}

func TestUpdateProductQuantityDiffBecomesAdjustment(t *testing.T) {
	products, movements, svc := newProductFixture()
	p := products.add(&model.Product{Name: "Flour", SalePrice: price("2.00"), Quantity: 10})

	resp, err := svc.Update(context.Background(), uuid.New(), p.ID, dto.UpdateProductRequest{
		Name:      "Flour",
		SalePrice: price("2.00"),
		Quantity:  16,
	})
	require.NoError(t, err)
	assert.Equal(t, 16, resp.Quantity)

	all := movements.all()
	require.Len(t, all, 1)
	assert.Equal(t, model.DirectionEntry, all[0].Direction)
	assert.Equal(t, 6, all[0].Quantity)
	assert.Equal(t, "admin adjustment", all[0].Reason)
}

func TestUpdateProductQuantityDecrease(t *testing.T) {
	products, movements, svc := newProductFixture()
	p := products.add(&model.Product{Name: "Salt", SalePrice: price("0.80"), Quantity: 10})

	resp, err := svc.Update(context.Background(), uuid.New(), p.ID, dto.UpdateProductRequest{
		Name:      "Salt",
		SalePrice: price("0.80"),
		Quantity:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Quantity)

	all := movements.all()
	require.Len(t, all, 1)
	assert.Equal(t, model.DirectionExit, all[0].Direction)
	assert.Equal(t, 6, all[0].Quantity)
}

func TestUpdateProductSameQuantityNoMovement(t *testing.T) {
	products, movements, svc := newProductFixture()
	p := products.add(&model.Product{Name: "Pepper", SalePrice: price("1.50"), Quantity: 7})

	resp, err := svc.Update(context.Background(), uuid.New(), p.ID, dto.UpdateProductRequest{
		Name:      "Black Pepper",
		SalePrice: price("1.75"),
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Black Pepper", resp.Name)
	assert.Equal(t, 7, resp.Quantity)
	assert.Empty(t, movements.all())
}

func TestUpdateProductNotFound(t *testing.T) {
	_, _, svc := newProductFixture()
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), dto.UpdateProductRequest{
		Name: "Nope", SalePrice: price("1.00"),
	})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}

func TestDeleteProductRemovesItsMovements(t *testing.T) {
	products, movements, svc := newProductFixture()
	ctx := context.Background()

	resp, err := svc.Create(ctx, uuid.New(), dto.CreateProductRequest{
		Name: "Doomed", SalePrice: price("1.00"), Quantity: 5,
	})
	require.NoError(t, err)
	require.Len(t, movements.all(), 1)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, id))

	assert.Empty(t, products.products)
	assert.Empty(t, movements.all())
}

func TestPriceCheckWithoutCache(t *testing.T) {
	products, _, svc := newProductFixture()
	barcode := "7791234567890"
	products.add(&model.Product{Name: "Yerba", SalePrice: price("4.20"), Quantity: 9, Category: "Drinks", Barcode: &barcode})

	resp, err := svc.PriceCheck(context.Background(), barcode)
	require.NoError(t, err)
	assert.Equal(t, "Yerba", resp.Name)
	assert.True(t, resp.SalePrice.Equal(price("4.20")))
	assert.Equal(t, 9, resp.Available)

	_, err = svc.PriceCheck(context.Background(), "0000000000000")
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}

func TestCategories(t *testing.T) {
	products, _, svc := newProductFixture()
	products.add(&model.Product{Name: "A", Category: "Dairy"})
	products.add(&model.Product{Name: "B", Category: "Dairy"})
	products.add(&model.Product{Name: "C", Category: ""})

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dairy"}, cats)
}

func TestCostVisibilityFollowsCaller(t *testing.T) {
	products, _, svc := newProductFixture()
	p := products.add(&model.Product{Name: "Rice", PurchasePrice: price("1.20"), SalePrice: price("2.00")})

	admin, err := svc.Get(context.Background(), p.ID, true)
	require.NoError(t, err)
	require.NotNil(t, admin.PurchasePrice)
	assert.True(t, admin.PurchasePrice.Equal(price("1.20")))

	cashier, err := svc.Get(context.Background(), p.ID, false)
	require.NoError(t, err)
	assert.Nil(t, cashier.PurchasePrice)

	list, err := svc.List(context.Background(), dto.ProductFilter{Page: 1, Limit: 50}, false)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Nil(t, list.Data[0].PurchasePrice)
}
