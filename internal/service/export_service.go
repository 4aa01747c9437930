package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"orionpos/internal/dto"
	"orionpos/internal/repository"
)

// ExportService renders catalog, ledger and sales data as CSV for download.
// Files start with a UTF-8 BOM so spreadsheet apps detect the encoding.
type ExportService interface {
	Products(ctx context.Context) ([]byte, error)
	Movements(ctx context.Context, period string) ([]byte, error)
	Sales(ctx context.Context, period string) ([]byte, error)
	Clients(ctx context.Context) ([]byte, error)
}

type exportService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	saleRepo     repository.SaleRepository
	clientRepo   repository.ClientRepository
	now          func() time.Time
}

func NewExportService(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
) ExportService {
	return &exportService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		clientRepo:   clientRepo,
		now:          time.Now,
	}
}

func (s *exportService) Products(ctx context.Context) ([]byte, error) {
	products, _, err := s.productRepo.List(ctx, dto.ProductFilter{Page: 1, Limit: 10000})
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"name", "category", "purchase_price", "sale_price", "quantity", "min_stock", "barcode"}}
	for _, p := range products {
		barcode := ""
		if p.Barcode != nil {
			barcode = *p.Barcode
		}
		rows = append(rows, []string{
			p.Name, p.Category,
			p.PurchasePrice.StringFixed(2), p.SalePrice.StringFixed(2),
			strconv.Itoa(p.Quantity), strconv.Itoa(p.MinStock), barcode,
		})
	}
	return writeCSV(rows)
}

func (s *exportService) Movements(ctx context.Context, period string) ([]byte, error) {
	since := periodCutoff(period, s.now())
	movements, _, err := s.movementRepo.List(ctx, dto.MovementFilter{Page: 1, Limit: 10000}, since)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"date", "product", "direction", "quantity", "reason"}}
	for _, m := range movements {
		rows = append(rows, []string{
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			m.ProductName, m.Direction, strconv.Itoa(m.Quantity), m.Reason,
		})
	}
	return writeCSV(rows)
}

func (s *exportService) Sales(ctx context.Context, period string) ([]byte, error) {
	since := periodCutoff(period, s.now())
	sales, _, err := s.saleRepo.List(ctx, dto.SaleFilter{Page: 1, Limit: 10000}, since)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"date", "invoice", "client", "payment_method", "subtotal", "discount", "total"}}
	for _, sale := range sales {
		client := ""
		if sale.Client != nil {
			client = sale.Client.Name
		}
		rows = append(rows, []string{
			sale.CreatedAt.Format("2006-01-02 15:04:05"),
			sale.InvoiceNumber, client, sale.PaymentMethod,
			sale.Subtotal.StringFixed(2), sale.DiscountValue.StringFixed(2), sale.Total.StringFixed(2),
		})
	}
	return writeCSV(rows)
}

func (s *exportService) Clients(ctx context.Context) ([]byte, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"name", "phone", "email", "address", "created_at"}}
	for _, c := range clients {
		rows = append(rows, []string{c.Name, c.Phone, c.Email, c.Address, c.CreatedAt.Format("2006-01-02")})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\ufeff")
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
