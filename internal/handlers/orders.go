package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dhruv435/slugma-admin/internal/events"
	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/Dhruv435/slugma-admin/internal/store"
)

type OrderHandler struct {
	Store     *store.Store
	Publisher *events.Publisher
}

// List returns active orders by default; ?status=history returns the
// archived terminal ones instead.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	history := r.URL.Query().Get("status") == "history"
	orders, err := h.Store.GetOrders(history)
	if err != nil {
		slog.Error("Failed to fetch orders", "error", err)
		respondError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

type orderUpdateRequest struct {
	OrderStatus    *models.OrderStatus `json:"orderStatus"`
	DeliveryOption *string             `json:"deliveryOption"`
	AdminMessage   *string             `json:"adminMessage"`
}

// Update applies a partial edit (status, delivery stage, admin message).
// Orders in a terminal state are immutable from this interface.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Store.GetOrderByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("Failed to fetch order", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error fetching order")
		return
	}

	if order.Status.Terminal() {
		RecordAdminOperation("order_update", false)
		respondError(w, http.StatusBadRequest, "Cannot modify a completed or cancelled order.")
		return
	}

	statusChanged := false
	if req.OrderStatus != nil {
		if !req.OrderStatus.Valid() {
			respondError(w, http.StatusBadRequest, "Invalid order status")
			return
		}
		statusChanged = order.Status != *req.OrderStatus
		order.Status = *req.OrderStatus
	}
	if req.DeliveryOption != nil {
		if !models.ValidDeliveryOption(*req.DeliveryOption) {
			respondError(w, http.StatusBadRequest, "Invalid delivery option")
			return
		}
		order.DeliveryOption = *req.DeliveryOption
	}
	if req.AdminMessage != nil {
		order.AdminMessage = *req.AdminMessage
	}

	if err := h.Store.UpdateOrderStatus(order.ID, order.Status, order.DeliveryOption, order.AdminMessage); err != nil {
		slog.Error("Failed to update order", "error", err, "id", id)
		RecordAdminOperation("order_update", false)
		respondError(w, http.StatusInternalServerError, "Error updating order")
		return
	}
	RecordAdminOperation("order_update", true)

	if statusChanged {
		ev := events.OrderEvent{
			OrderID:        order.ID,
			OrderStatus:    order.Status,
			DeliveryOption: order.DeliveryOption,
		}
		if err := h.Publisher.PublishOrderUpdate(ev); err != nil {
			// The update itself succeeded; the storefront just misses a
			// notification. Log and move on.
			slog.Warn("Failed to publish order event", "error", err, "id", order.ID)
		}
	}

	respondJSON(w, http.StatusOK, order)
}
