package store

import (
	"database/sql"
	"encoding/json"

	"github.com/Dhruv435/slugma-admin/internal/models"
)

// Orders are created by the storefront and never deleted here; terminal
// statuses move them into history instead.

const orderColumns = `o.id, o.user_id, COALESCE(u.username, '') as username, COALESCE(u.mobile_number, '') as mobile_number,
	o.items, o.total_price, o.ship_name, o.ship_mobile, o.ship_address, o.ship_pincode, o.ship_state,
	o.payment_method, o.order_status, o.delivery_option, o.admin_message, o.created_at`

func (s *Store) CreateOrder(order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (user_id, items, total_price, ship_name, ship_mobile, ship_address,
			ship_pincode, ship_state, payment_method, order_status, delivery_option, admin_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query, order.UserID, string(items), order.TotalPrice,
		order.ShippingAddress.PersonName, order.ShippingAddress.MobileNumber,
		order.ShippingAddress.Address, order.ShippingAddress.Pincode, order.ShippingAddress.State,
		order.PaymentMethod, order.Status, order.DeliveryOption, order.AdminMessage)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = int(id)
	return nil
}

// GetOrders returns either the active orders or the archived history.
// History holds the terminal statuses; everything else is active.
func (s *Store) GetOrders(history bool) ([]models.Order, error) {
	cond := `NOT IN`
	if history {
		cond = `IN`
	}
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE o.order_status ` + cond + ` (?, ?)
		ORDER BY o.created_at DESC, o.id DESC
	`
	rows, err := s.DB.Query(query, models.StatusCancelled, models.StatusDeliveredConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (s *Store) GetOrderByID(id int) (*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE o.id = ?
	`
	o, err := scanOrder(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateOrderStatus overwrites the three admin-editable fields.
func (s *Store) UpdateOrderStatus(id int, status models.OrderStatus, deliveryOption, adminMessage string) error {
	res, err := s.DB.Exec(`UPDATE orders SET order_status = ?, delivery_option = ?, admin_message = ? WHERE id = ?`,
		status, deliveryOption, adminMessage, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	var items string
	err := row.Scan(&o.ID, &o.UserID, &o.User.Username, &o.User.MobileNumber,
		&items, &o.TotalPrice, &o.ShippingAddress.PersonName, &o.ShippingAddress.MobileNumber,
		&o.ShippingAddress.Address, &o.ShippingAddress.Pincode, &o.ShippingAddress.State,
		&o.PaymentMethod, &o.Status, &o.DeliveryOption, &o.AdminMessage, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if items == "" {
		items = "[]"
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}
