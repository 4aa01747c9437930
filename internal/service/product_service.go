package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const priceCacheTTL = 60 * time.Second

// ProductService manages the catalog. Quantity is never written directly:
// creation seeds it through an initial-stock entry, and edits that change it
// are translated into adjustment movements, both via StockService.
// Read paths take includeCost so purchase prices only reach admins.
type ProductService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID, includeCost bool) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter, includeCost bool) (*dto.ProductListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
	PriceCheck(ctx context.Context, barcode string) (*dto.PriceCheckResponse, error)
}

type productService struct {
	repo         repository.ProductRepository
	movementRepo repository.MovementRepository
	stock        StockService
	rdb          *redis.Client
}

func NewProductService(repo repository.ProductRepository, movementRepo repository.MovementRepository, stock StockService, rdb *redis.Client) ProductService {
	return &productService{repo: repo, movementRepo: movementRepo, stock: stock, rdb: rdb}
}

// Create inserts the product with zero quantity and, when the request carries
// an initial quantity, records the seeding entry in the same transaction so
// the ledger explains the full balance from day one.
func (s *productService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Quantity:      0,
		MinStock:      req.MinStock,
		Image:         req.Image,
		Barcode:       req.Barcode,
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		if req.Quantity > 0 {
			return s.stock.ApplyTx(tx, &model.StockMovement{
				ProductID: p.ID,
				Direction: model.DirectionEntry,
				Quantity:  req.Quantity,
				Reason:    "initial stock",
				UserID:    userID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := productToResponse(created, true)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID, includeCost bool) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product not found")
		}
		return nil, err
	}
	resp := productToResponse(p, includeCost)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter, includeCost bool) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, productToResponse(&p, includeCost))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update saves the editable fields. A submitted quantity that differs from
// the stored one becomes an adjustment movement in the same transaction, so
// manual corrections show up in the ledger like any other change.
func (s *productService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product not found")
		}
		return nil, err
	}

	diff := req.Quantity - p.Quantity

	p.Name = req.Name
	p.Category = req.Category
	p.PurchasePrice = req.PurchasePrice
	p.SalePrice = req.SalePrice
	p.MinStock = req.MinStock
	p.Image = req.Image
	p.Barcode = req.Barcode

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SaveTx(tx, p, "quantity"); err != nil {
			return err
		}
		if diff == 0 {
			return nil
		}
		m := &model.StockMovement{
			ProductID: p.ID,
			Quantity:  diff,
			Reason:    "admin adjustment",
			UserID:    userID,
		}
		if diff > 0 {
			m.Direction = model.DirectionEntry
		} else {
			m.Direction = model.DirectionExit
			m.Quantity = -diff
		}
		return s.stock.ApplyTx(tx, m)
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePriceCache(ctx, p.Barcode)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := productToResponse(updated, true)
	return &resp, nil
}

// Delete removes the product and its ledger rows in one transaction. Sale
// items keep their name and price snapshots, so past invoices stay intact.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("product not found")
		}
		return err
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.movementRepo.DeleteByProductTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if err != nil {
		return err
	}

	s.invalidatePriceCache(ctx, p.Barcode)
	return nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

// ── Barcode price lookup ─────────────────────────────────────────────────────
// Hot path for the in-store price checker; served from Redis when possible.

func (s *productService) PriceCheck(ctx context.Context, barcode string) (*dto.PriceCheckResponse, error) {
	key := priceCacheKey(barcode)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var cached dto.PriceCheckResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("no product with that barcode")
		}
		return nil, err
	}

	resp := &dto.PriceCheckResponse{
		Name:      p.Name,
		SalePrice: p.SalePrice,
		Available: p.Quantity,
		Category:  p.Category,
	}
	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, key, raw, priceCacheTTL)
		}
	}
	return resp, nil
}

func (s *productService) invalidatePriceCache(ctx context.Context, barcode *string) {
	if s.rdb == nil || barcode == nil || *barcode == "" {
		return
	}
	s.rdb.Del(ctx, priceCacheKey(*barcode))
}

func priceCacheKey(barcode string) string { return fmt.Sprintf("price:%s", barcode) }

func productToResponse(p *model.Product, includeCost bool) dto.ProductResponse {
	r := dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Category:  p.Category,
		SalePrice: p.SalePrice,
		Quantity:  p.Quantity,
		MinStock:  p.MinStock,
		Image:     p.Image,
		Barcode:   p.Barcode,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if includeCost {
		pp := p.PurchasePrice
		r.PurchasePrice = &pp
	}
	return r
}
