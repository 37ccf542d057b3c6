package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/Dhruv435/slugma-admin/internal/api"
	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	orders  []models.Order
	listErr error
	updErr  error

	updates []api.OrderUpdate
	updated []int
}

func (f *fakeOrderService) ListOrders(ctx context.Context, history bool) ([]models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeOrderService) UpdateOrder(ctx context.Context, id int, upd api.OrderUpdate) (*models.Order, error) {
	if f.updErr != nil {
		return nil, f.updErr
	}
	f.updated = append(f.updated, id)
	f.updates = append(f.updates, upd)
	return &models.Order{ID: id}, nil
}

func confirmYes(string) bool { return true }
func confirmNo(string) bool  { return false }

func twoOrders() []models.Order {
	return []models.Order{
		{ID: 1, Status: models.StatusPending, DeliveryOption: models.DeliveryOptions[0]},
		{ID: 2, Status: models.StatusCancelled, DeliveryOption: models.DeliveryOptions[0]},
	}
}

func TestLoadFailureKeepsPreviousList(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))
	require.Len(t, w.Orders(), 2)

	svc.listErr = errors.New("connection refused")
	assert.Error(t, w.Load(context.Background(), true))
	assert.Len(t, w.Orders(), 2)
	assert.False(t, w.History())
}

func TestBeginEditRejectsTerminalOrder(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))

	assert.False(t, w.BeginEdit(2))
	_, editing := w.Editing()
	assert.False(t, editing)
	assert.Equal(t, Banner{OK: false, Text: "Cannot edit a completed or cancelled order."}, w.Banner())

	assert.False(t, w.BeginEdit(99))
	assert.Equal(t, "Order not found.", w.Banner().Text)
}

func TestBeginEditSeedsDraft(t *testing.T) {
	svc := &fakeOrderService{orders: []models.Order{{
		ID:             1,
		Status:         models.StatusShipped,
		DeliveryOption: models.DeliveryOptions[2],
		AdminMessage:   "On its way",
	}}}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))

	require.True(t, w.BeginEdit(1))
	assert.Equal(t, EditDraft{
		Status:         models.StatusShipped,
		DeliveryOption: models.DeliveryOptions[2],
		AdminMessage:   "On its way",
	}, w.Draft())
}

func TestDraftSettersValidate(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))
	require.True(t, w.BeginEdit(1))

	assert.True(t, w.SetDraftStatus(models.StatusProcessing))
	assert.False(t, w.SetDraftStatus("Teleported"))
	assert.False(t, w.SetDraftStatus(models.StatusCancelled))
	assert.Equal(t, models.StatusProcessing, w.Draft().Status)

	assert.True(t, w.SetDraftDelivery(models.DeliveryOptions[4]))
	assert.False(t, w.SetDraftDelivery("Option 9 - Never"))
	assert.Equal(t, models.DeliveryOptions[4], w.Draft().DeliveryOption)
}

func TestStatusChoicesExcludeTerminal(t *testing.T) {
	w := NewOrderWorkflow(&fakeOrderService{}, confirmYes)
	choices := w.StatusChoices()
	assert.NotContains(t, choices, models.StatusCancelled)
	assert.NotContains(t, choices, models.StatusDeliveredConfirmed)
	assert.Contains(t, choices, models.StatusPending)
}

func TestSaveEditSendsDraftAndReloads(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))
	require.True(t, w.BeginEdit(1))
	w.SetDraftStatus(models.StatusShipped)
	w.SetDraftMessage("Dispatched")

	require.NoError(t, w.SaveEdit(context.Background()))

	require.Len(t, svc.updates, 1)
	assert.Equal(t, []int{1}, svc.updated)
	assert.Equal(t, models.StatusShipped, *svc.updates[0].Status)
	assert.Equal(t, "Dispatched", *svc.updates[0].AdminMessage)

	_, editing := w.Editing()
	assert.False(t, editing)
	assert.Equal(t, Banner{OK: true, Text: "Order updated successfully!"}, w.Banner())
}

func TestSaveEditFailureKeepsEditMode(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))
	require.True(t, w.BeginEdit(1))

	svc.updErr = errors.New("connection refused")
	assert.Error(t, w.SaveEdit(context.Background()))

	id, editing := w.Editing()
	assert.True(t, editing)
	assert.Equal(t, 1, id)
	assert.False(t, w.Banner().OK)
	assert.Contains(t, w.Banner().Text, "Failed to update order")
}

func TestSaveEditWithoutEditIsNoop(t *testing.T) {
	svc := &fakeOrderService{}
	w := NewOrderWorkflow(svc, confirmYes)

	require.NoError(t, w.SaveEdit(context.Background()))
	assert.Empty(t, svc.updates)
}

func TestCancelEditIsIdempotent(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))
	require.True(t, w.BeginEdit(1))

	w.CancelEdit()
	w.CancelEdit()
	_, editing := w.Editing()
	assert.False(t, editing)
	assert.Equal(t, EditDraft{}, w.Draft())
	assert.Empty(t, svc.updates)
}

func TestMarkDeliveredDeclinedSendsNothing(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmNo)
	require.NoError(t, w.Load(context.Background(), false))

	require.NoError(t, w.MarkDelivered(context.Background(), 1))
	assert.Empty(t, svc.updates)
}

func TestMarkDeliveredConfirmed(t *testing.T) {
	svc := &fakeOrderService{orders: twoOrders()}
	w := NewOrderWorkflow(svc, confirmYes)
	require.NoError(t, w.Load(context.Background(), false))

	require.NoError(t, w.MarkDelivered(context.Background(), 1))
	require.Len(t, svc.updates, 1)
	assert.Equal(t, models.StatusDeliveredConfirmed, *svc.updates[0].Status)
	assert.Equal(t, Banner{OK: true, Text: "Order moved to history successfully!"}, w.Banner())
}
