package service

import (
	"context"
	"errors"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientDetailResponse, error)
	List(ctx context.Context, search string) ([]dto.ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo     repository.ClientRepository
	saleRepo repository.SaleRepository
}

func NewClientService(repo repository.ClientRepository, saleRepo repository.SaleRepository) ClientService {
	return &clientService{repo: repo, saleRepo: saleRepo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := &model.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

// Get returns the client together with their purchase history.
func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*dto.ClientDetailResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("client not found")
		}
		return nil, err
	}
	sales, err := s.saleRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ClientDetailResponse{ClientResponse: clientToResponse(c)}
	detail.Sales = make([]dto.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		detail.Sales = append(detail.Sales, saleToListItem(&sale))
	}
	return detail, nil
}

func (s *clientService) List(ctx context.Context, search string) ([]dto.ClientResponse, error) {
	var clients []model.Client
	var err error
	if search != "" {
		clients, err = s.repo.Search(ctx, search)
	} else {
		clients, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClientResponse, len(clients))
	for i, c := range clients {
		resp[i] = clientToResponse(&c)
	}
	return resp, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("client not found")
		}
		return nil, err
	}
	c.Name = req.Name
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

// Delete removes the client. Past sales keep a dangling client id; invoices
// remain valid because names are snapshotted on the sale items.
func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("client not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func clientToResponse(c *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
