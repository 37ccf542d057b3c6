package store

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Store{DB: db}, mock
}

func TestGetAllProductsQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("disk I/O error"))

	_, err := s.GetAllProducts()
	assert.EqualError(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusExecError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE orders SET").WillReturnError(errors.New("database is locked"))

	err := s.UpdateOrderStatus(1, models.StatusShipped, models.DeliveryOptions[0], "")
	assert.EqualError(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductNoRowsAffected(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeleteProduct(42), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanOrderRejectsMalformedItems(t *testing.T) {
	s, mock := newMockStore(t)

	cols := []string{"id", "user_id", "username", "mobile_number", "items", "total_price",
		"ship_name", "ship_mobile", "ship_address", "ship_pincode", "ship_state",
		"payment_method", "order_status", "delivery_option", "admin_message", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM orders o").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			1, 1, "asha", "9876543210", "{not json", 10.0,
			"Asha", "9876543210", "12 MG Road", "560001", "Karnataka",
			"COD", "Pending", models.DeliveryOptions[0], "", time.Now()))

	_, err := s.GetOrderByID(1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
