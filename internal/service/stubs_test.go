package service

import (
	"context"
	"time"

	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var result []model.Product
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DistinctCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var cats []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats, nil
}

func (r *stubProductRepo) FindBelowMinStock(_ context.Context) ([]model.Product, error) {
	var result []model.Product
	for _, p := range r.products {
		if p.Quantity <= p.MinStock {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Product, error) {
	var result []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) SaveTx(_ *gorm.DB, p *model.Product, omit ...string) error {
	if existing, ok := r.products[p.ID]; ok {
		for _, col := range omit {
			if col == "quantity" {
				p.Quantity = existing.Quantity
			}
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) AdjustQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity += delta
	return nil
}

func (r *stubProductRepo) SetQuantityTx(_ *gorm.DB, id uuid.UUID, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── In-memory MovementRepository stub ────────────────────────────────────────

type stubMovementRepo struct {
	movements map[uuid.UUID]*model.StockMovement
	order     []uuid.UUID
}

func newStubMovementRepo() *stubMovementRepo {
	return &stubMovementRepo{movements: make(map[uuid.UUID]*model.StockMovement)}
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	return r.CreateTx(nil, m)
}

func (r *stubMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter, _ *time.Time) ([]model.StockMovement, int64, error) {
	var result []model.StockMovement
	for _, id := range r.order {
		m := r.movements[id]
		if filter.ProductID != "" && m.ProductID.String() != filter.ProductID {
			continue
		}
		if filter.Direction != "" && m.Direction != filter.Direction {
			continue
		}
		result = append(result, *m)
	}
	return result, int64(len(result)), nil
}

func (r *stubMovementRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.StockMovement, error) {
	var result []model.StockMovement
	for _, id := range r.order {
		if m := r.movements[id]; m.ProductID == productID {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movements[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *stubMovementRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.movements, id)
	for i, mid := range r.order {
		if mid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubMovementRepo) DeleteByProductTx(_ *gorm.DB, productID uuid.UUID) error {
	for _, id := range append([]uuid.UUID(nil), r.order...) {
		if r.movements[id].ProductID == productID {
			_ = r.DeleteTx(nil, id)
		}
	}
	return nil
}

func (r *stubMovementRepo) DB() *gorm.DB { return nil }

// all returns movements in insertion order.
func (r *stubMovementRepo) all() []*model.StockMovement {
	result := make([]*model.StockMovement, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.movements[id])
	}
	return result
}

// ── In-memory SaleRepository stub ────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter, since *time.Time) ([]model.Sale, int64, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if since != nil && s.CreatedAt.Before(*since) {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (r *stubSaleRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if s.ClientID != nil && *s.ClientID == clientID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *stubSaleRepo) ListSince(_ context.Context, since time.Time) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(since) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	for _, existing := range r.sales {
		if existing.InvoiceNumber == s.InvoiceNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

// ── In-memory ClientRepository stub ──────────────────────────────────────────

type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	return r.CreateTx(nil, c)
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClientRepo) Search(_ context.Context, _ string) ([]model.Client, error) {
	return r.List(context.Background())
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	var result []model.Client
	for _, c := range r.clients {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) CreateTx(_ *gorm.DB, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

// ── In-memory treasury stubs ─────────────────────────────────────────────────

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[uuid.UUID]*model.Expense)}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *stubExpenseRepo) List(_ context.Context) ([]model.Expense, error) {
	var result []model.Expense
	for _, e := range r.expenses {
		result = append(result, *e)
	}
	return result, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, e *model.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *stubExpenseRepo) SumSince(_ context.Context, since time.Time, expenseType string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.expenses {
		if e.Type == expenseType && !e.CreatedAt.Before(since) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

type stubGoalRepo struct {
	goals map[uuid.UUID]*model.FinancialGoal
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{goals: make(map[uuid.UUID]*model.FinancialGoal)}
}

func (r *stubGoalRepo) Create(_ context.Context, g *model.FinancialGoal) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.goals[g.ID] = g
	return nil
}

func (r *stubGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FinancialGoal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *stubGoalRepo) List(_ context.Context) ([]model.FinancialGoal, error) {
	var result []model.FinancialGoal
	for _, g := range r.goals {
		result = append(result, *g)
	}
	return result, nil
}

func (r *stubGoalRepo) Update(_ context.Context, g *model.FinancialGoal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *stubGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type stubConfigRepo struct {
	cfg model.CompanyConfig
}

func (r *stubConfigRepo) Get(_ context.Context) (*model.CompanyConfig, error) {
	cp := r.cfg
	cp.ID = 1
	return &cp, nil
}

func (r *stubConfigRepo) Update(_ context.Context, c *model.CompanyConfig) error {
	c.ID = 1
	r.cfg = *c
	return nil
}

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range r.users {
		result = append(result, *u)
	}
	return result, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}
