package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/infra"
	"orionpos/internal/model"
	"orionpos/internal/repository"
	"orionpos/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService handles checkout and its reversal. Both touch stock only via
// StockService so every quantity change is matched by a ledger row.
type SaleService interface {
	Checkout(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ReceiptPDF renders the receipt on demand and returns the file path.
	ReceiptPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	configRepo  repository.ConfigRepository
	stock       StockService
	dispatcher  *worker.Dispatcher
	pdfPath     string
	now         func() time.Time
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	configRepo repository.ConfigRepository,
	stock StockService,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) SaleService {
	return &saleService{
		repo:        repo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		configRepo:  configRepo,
		stock:       stock,
		dispatcher:  dispatcher,
		pdfPath:     pdfPath,
		now:         time.Now,
	}
}

// Checkout runs the full sale transaction:
//  1. resolve the client (existing ID or inline creation)
//  2. snapshot product names and prices into line items
//  3. exit stock per line through the ledger, failing the whole sale on the
//     first line a product cannot cover
//  4. persist sale + items + movements atomically
//  5. after commit, enqueue the receipt job
func (s *saleService) Checkout(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var clientID *uuid.UUID
	if req.ClientID != nil && *req.ClientID != "" {
		id, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, apierror.Validation("invalid client_id")
		}
		if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("client not found")
			}
			return nil, err
		}
		clientID = &id
	}

	invoice := invoiceNumber(s.now())
	sale := &model.Sale{
		InvoiceNumber: invoice,
		ClientID:      clientID,
		UserID:        userID,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		PaymentMethod: req.PaymentMethod,
	}
	if sale.DiscountType == "" {
		sale.DiscountType = model.DiscountPercent
	}
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = "cash"
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Inline client creation rides the sale transaction.
		if clientID == nil && req.ClientName != "" {
			c := &model.Client{
				Name:  req.ClientName,
				Phone: req.ClientPhone,
				Email: req.ClientEmail,
			}
			if err := s.clientRepo.CreateTx(tx, c); err != nil {
				return err
			}
			sale.ClientID = &c.ID
		}

		subtotal := decimal.Zero
		for _, item := range req.Items {
			pid, err := uuid.Parse(item.ProductID)
			if err != nil {
				return apierror.Validation("invalid product_id in items")
			}
			p, err := s.productRepo.FindByIDTx(tx, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apierror.NotFound(fmt.Sprintf("product %s not found", item.ProductID))
				}
				return err
			}

			unitPrice := item.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = p.SalePrice
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			subtotal = subtotal.Add(lineTotal)

			sale.Items = append(sale.Items, model.SaleItem{
				ProductID:   pid,
				ProductName: p.Name,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				Total:       lineTotal,
			})
		}

		sale.Subtotal = subtotal
		sale.Total = applyDiscount(subtotal, sale.DiscountType, sale.DiscountValue)

		if err := s.repo.CreateTx(tx, sale); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierror.Conflict("invoice number already exists, retry the sale")
			}
			return err
		}

		for _, item := range sale.Items {
			err := s.stock.ApplyTx(tx, &model.StockMovement{
				ProductID: item.ProductID,
				Direction: model.DirectionExit,
				Quantity:  item.Quantity,
				Reason:    "sale " + invoice,
				UserID:    userID,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		// Best effort; the sale is committed either way.
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptPayload{SaleID: sale.ID.String()})
	}

	return s.Get(ctx, sale.ID)
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("sale not found")
		}
		return nil, err
	}
	resp := saleToResponse(sale)
	return &resp, nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	since := periodCutoff(filter.Period, s.now())
	sales, total, err := s.repo.List(ctx, filter, since)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, saleToListItem(&sale))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Delete reverses the sale: each line gets a compensating entry movement, then
// the sale and its items are removed, all in one transaction. Lines whose
// product no longer exists are skipped; there is no quantity left to restore.
func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("sale not found")
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			if _, err := s.productRepo.FindByIDTx(tx, item.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			err := s.stock.ApplyTx(tx, &model.StockMovement{
				ProductID: item.ProductID,
				Direction: model.DirectionEntry,
				Quantity:  item.Quantity,
				Reason:    "sale cancellation " + sale.InvoiceNumber,
				UserID:    sale.UserID,
			})
			if err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, sale.ID)
	})
}

func (s *saleService) ReceiptPDF(ctx context.Context, id uuid.UUID) (string, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NotFound("sale not found")
		}
		return "", err
	}
	var company *model.CompanyConfig
	if s.configRepo != nil {
		company, _ = s.configRepo.Get(ctx)
	}
	return infra.GenerateReceiptPDF(sale, company, s.pdfPath)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func invoiceNumber(t time.Time) string {
	return "INV-" + t.Format("20060102-150405")
}

func applyDiscount(subtotal decimal.Decimal, discountType string, value decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	switch discountType {
	case model.DiscountAmount:
		total = subtotal.Sub(value)
	default:
		total = subtotal.Sub(subtotal.Mul(value).Div(decimal.NewFromInt(100)))
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total.Round(2)
}

func saleToResponse(sale *model.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	r := dto.SaleResponse{
		ID:            sale.ID.String(),
		InvoiceNumber: sale.InvoiceNumber,
		UserID:        sale.UserID.String(),
		Subtotal:      sale.Subtotal,
		DiscountType:  sale.DiscountType,
		DiscountValue: sale.DiscountValue,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Items:         items,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
	}
	if sale.ClientID != nil {
		cid := sale.ClientID.String()
		r.ClientID = &cid
	}
	if sale.Client != nil {
		r.ClientName = sale.Client.Name
	}
	if sale.User != nil {
		r.UserName = sale.User.FullName
	}
	return r
}

func saleToListItem(sale *model.Sale) dto.SaleListItem {
	item := dto.SaleListItem{
		ID:            sale.ID.String(),
		InvoiceNumber: sale.InvoiceNumber,
		Subtotal:      sale.Subtotal,
		DiscountValue: sale.DiscountValue,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
	}
	if sale.Client != nil {
		item.ClientName = sale.Client.Name
	}
	if sale.User != nil {
		item.UserName = sale.User.FullName
	}
	return item
}
