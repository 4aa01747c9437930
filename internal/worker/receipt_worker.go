package worker

// receipt_worker.go
// Renders the PDF receipt for a completed sale and, when the sale's client
// has an email address, chains an email job carrying the attachment.

import (
	"context"
	"encoding/json"
	"fmt"

	"orionpos/internal/infra"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	saleRepo    repository.SaleRepository
	configRepo  repository.ConfigRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewReceiptWorker(
	saleRepo repository.SaleRepository,
	configRepo repository.ConfigRepository,
	dispatcher *Dispatcher,
	storagePath string,
) *ReceiptWorker {
	return &ReceiptWorker{
		saleRepo:    saleRepo,
		configRepo:  configRepo,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

// Process renders the receipt. A sale that disappeared before the job ran is
// not an error; it was deleted and needs no receipt.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReceiptPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return nil
	}
	saleID, err := uuid.Parse(payload.SaleID)
	if err != nil {
		log.Error().Str("sale_id", payload.SaleID).Msg("receipt_worker: malformed sale id")
		return nil
	}

	sale, err := w.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		log.Warn().Str("sale_id", payload.SaleID).Msg("receipt_worker: sale not found, skipping")
		return nil
	}

	company, err := w.configRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("receipt_worker: load company config: %w", err)
	}

	pdfPath, err := infra.GenerateReceiptPDF(sale, company, w.storagePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: %w", err)
	}
	log.Info().Str("invoice", sale.InvoiceNumber).Str("path", pdfPath).Msg("receipt_worker: PDF generated")

	if sale.Client != nil && sale.Client.Email != "" && w.dispatcher != nil {
		return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
			ToEmail: sale.Client.Email,
			Subject: "Your receipt " + sale.InvoiceNumber,
			Body:    "Thank you for your purchase. Your receipt is attached.",
			PDFPath: pdfPath,
		})
	}
	return nil
}
