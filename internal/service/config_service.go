package service

import (
	"context"

	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"
)

// ConfigService exposes the company config singleton used on receipts and
// in the storefront header.
type ConfigService interface {
	Get(ctx context.Context) (*dto.ConfigResponse, error)
	Update(ctx context.Context, req dto.UpdateConfigRequest) (*dto.ConfigResponse, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Get(ctx context.Context) (*dto.ConfigResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := configToResponse(c)
	return &resp, nil
}

func (s *configService) Update(ctx context.Context, req dto.UpdateConfigRequest) (*dto.ConfigResponse, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Logo = req.Logo
	c.Address = req.Address
	c.Phone = req.Phone
	c.Email = req.Email
	c.Website = req.Website
	c.InvoiceHeader = req.InvoiceHeader
	c.InvoiceFooter = req.InvoiceFooter
	if req.Currency != "" {
		c.Currency = req.Currency
	}
	c.TaxRate = req.TaxRate
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := configToResponse(c)
	return &resp, nil
}

func configToResponse(c *model.CompanyConfig) dto.ConfigResponse {
	return dto.ConfigResponse{
		Name:          c.Name,
		Logo:          c.Logo,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		Website:       c.Website,
		InvoiceHeader: c.InvoiceHeader,
		InvoiceFooter: c.InvoiceFooter,
		Currency:      c.Currency,
		TaxRate:       c.TaxRate,
	}
}
