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

func newTreasuryFixture() (*stubExpenseRepo, *stubGoalRepo, TreasuryService) {
	expenses := newStubExpenseRepo()
	goals := newStubGoalRepo()
	return expenses, goals, NewTreasuryService(expenses, goals)
}

func TestCreateExpenseDefaults(t *testing.T) {
	_, _, svc := newTreasuryFixture()

	resp, err := svc.CreateExpense(context.Background(), dto.CreateExpenseRequest{
		Description: "Rent",
		Amount:      price("800.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "realized", resp.Type)
	assert.Equal(t, model.ExpensePending, resp.Status)
}

func TestUpdateExpenseNotFound(t *testing.T) {
	_, _, svc := newTreasuryFixture()
	_, err := svc.UpdateExpense(context.Background(), uuid.New(), dto.UpdateExpenseRequest{})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}

func TestCreateGoalParsesDeadline(t *testing.T) {
	_, _, svc := newTreasuryFixture()
	deadline := "2026-12-31"

	resp, err := svc.CreateGoal(context.Background(), dto.CreateGoalRequest{
		Name:         "New freezer",
		TargetAmount: price("1500.00"),
		Deadline:     &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	require.NotNil(t, resp.Deadline)
	assert.Equal(t, deadline, *resp.Deadline)

	bad := "31/12/2026"
	_, err = svc.CreateGoal(context.Background(), dto.CreateGoalRequest{
		Name: "Bad date", TargetAmount: price("1.00"), Deadline: &bad,
	})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindValidation))
}

func TestUpdateGoalFlipsToReached(t *testing.T) {
	_, goals, svc := newTreasuryFixture()
	g := &model.FinancialGoal{Name: "Van", TargetAmount: price("1000"), Status: "active"}
	require.NoError(t, goals.Create(context.Background(), g))

	resp, err := svc.UpdateGoal(context.Background(), g.ID, dto.UpdateGoalRequest{
		Name:          "Van",
		TargetAmount:  price("1000"),
		CurrentAmount: price("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "reached", resp.Status)
}

func TestUpdateGoalKeepsAbandonedStatus(t *testing.T) {
	_, goals, svc := newTreasuryFixture()
	g := &model.FinancialGoal{Name: "Dropped", TargetAmount: price("100"), Status: "active"}
	require.NoError(t, goals.Create(context.Background(), g))

	resp, err := svc.UpdateGoal(context.Background(), g.ID, dto.UpdateGoalRequest{
		Name:          "Dropped",
		TargetAmount:  price("100"),
		CurrentAmount: price("200"),
		Status:        "abandoned",
	})
	require.NoError(t, err)
	assert.Equal(t, "abandoned", resp.Status)
}
