package dashboard

import (
	"context"

	"github.com/Dhruv435/slugma-admin/internal/api"
	"github.com/Dhruv435/slugma-admin/internal/models"
)

// OrderService is the slice of the API client the order workflow needs.
type OrderService interface {
	ListOrders(ctx context.Context, history bool) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id int, upd api.OrderUpdate) (*models.Order, error)
}

// EditDraft holds the in-progress edit of one order, decoupled from the
// fetched list until saved.
type EditDraft struct {
	Status         models.OrderStatus
	DeliveryOption string
	AdminMessage   string
}

// OrderWorkflow is the order management view: an order list in either the
// active or history scope, at most one order in edit mode, and a banner.
type OrderWorkflow struct {
	svc     OrderService
	confirm ConfirmFunc

	orders    []models.Order
	history   bool
	editingID int // 0 when not editing
	draft     EditDraft
	banner    Banner
}

func NewOrderWorkflow(svc OrderService, confirm ConfirmFunc) *OrderWorkflow {
	return &OrderWorkflow{svc: svc, confirm: confirm}
}

// Load fetches the list for the given scope. On failure the previous list
// is left untouched.
func (w *OrderWorkflow) Load(ctx context.Context, history bool) error {
	orders, err := w.svc.ListOrders(ctx, history)
	if err != nil {
		return err
	}
	w.orders = orders
	w.history = history
	return nil
}

func (w *OrderWorkflow) Orders() []models.Order { return w.orders }
func (w *OrderWorkflow) History() bool          { return w.history }
func (w *OrderWorkflow) Banner() Banner         { return w.banner }

// Editing returns the id of the order being edited, if any.
func (w *OrderWorkflow) Editing() (int, bool) {
	return w.editingID, w.editingID != 0
}

func (w *OrderWorkflow) Draft() EditDraft { return w.draft }

// StatusChoices are the statuses the edit control offers. The terminal
// pair is excluded: mark-delivered is a dedicated action, and cancellation
// is not initiated from here.
func (w *OrderWorkflow) StatusChoices() []models.OrderStatus {
	return models.EditableStatuses()
}

// BeginEdit enters edit mode for the order, seeding the draft from its
// current values. Completed or cancelled orders are immutable; attempting
// to edit one produces a rejection banner and no edit mode.
func (w *OrderWorkflow) BeginEdit(id int) bool {
	order := w.find(id)
	if order == nil {
		w.banner = failuref("Order not found.")
		return false
	}
	if order.Status.Terminal() {
		w.banner = failuref("Cannot edit a completed or cancelled order.")
		return false
	}
	w.editingID = order.ID
	w.draft = EditDraft{
		Status:         order.Status,
		DeliveryOption: order.DeliveryOption,
		AdminMessage:   order.AdminMessage,
	}
	return true
}

// SetDraftStatus rejects choices outside the edit control's offering.
func (w *OrderWorkflow) SetDraftStatus(status models.OrderStatus) bool {
	if !status.Valid() || status.Terminal() {
		return false
	}
	w.draft.Status = status
	return true
}

func (w *OrderWorkflow) SetDraftDelivery(option string) bool {
	if !models.ValidDeliveryOption(option) {
		return false
	}
	w.draft.DeliveryOption = option
	return true
}

func (w *OrderWorkflow) SetDraftMessage(message string) {
	w.draft.AdminMessage = message
}

// SaveEdit sends the draft. On success the draft is discarded and the list
// re-fetched; on failure edit mode stays active so the admin can retry or
// cancel.
func (w *OrderWorkflow) SaveEdit(ctx context.Context) error {
	if w.editingID == 0 {
		return nil
	}
	upd := api.OrderUpdate{
		Status:         &w.draft.Status,
		DeliveryOption: &w.draft.DeliveryOption,
		AdminMessage:   &w.draft.AdminMessage,
	}
	if _, err := w.svc.UpdateOrder(ctx, w.editingID, upd); err != nil {
		w.banner = failuref("Failed to update order: %v", err)
		return err
	}
	w.banner = successf("Order updated successfully!")
	w.CancelEdit()
	return w.Load(ctx, w.history)
}

// CancelEdit discards the draft without touching the backend. Calling it
// while not editing is a no-op.
func (w *OrderWorkflow) CancelEdit() {
	w.editingID = 0
	w.draft = EditDraft{}
}

// MarkDelivered moves an order to the terminal "Delivered & Confirmed"
// state after interactive confirmation, then re-fetches so the order drops
// out of the active list.
func (w *OrderWorkflow) MarkDelivered(ctx context.Context, id int) error {
	if !w.confirm("Are you sure you want to mark this order as delivered and move it to history? This action cannot be undone.") {
		return nil
	}
	status := models.StatusDeliveredConfirmed
	if _, err := w.svc.UpdateOrder(ctx, id, api.OrderUpdate{Status: &status}); err != nil {
		w.banner = failuref("Failed to move order to history: %v", err)
		return err
	}
	w.banner = successf("Order moved to history successfully!")
	return w.Load(ctx, w.history)
}

func (w *OrderWorkflow) find(id int) *models.Order {
	for i := range w.orders {
		if w.orders[i].ID == id {
			return &w.orders[i]
		}
	}
	return nil
}
