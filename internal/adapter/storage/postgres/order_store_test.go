package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderColumns() []string {
	return []string{"id_order", "id_client", "id_cart", "id_payment_method",
		"status", "total_amount", "email", "name", "created_at"}
}

func TestOrderStore_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOrderStore(mock)
	created := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM orders o").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows(orderColumns()).AddRow(
			int64(100), int64(7), int64(3), int64(1),
			domain.OrderStatusProcessing, 49.99, "dana@example.com", "Dana",
			created,
		))

	order, err := store.GetByID(context.Background(), 100)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, 49.99, order.TotalAmount)
	assert.Equal(t, "dana@example.com", order.CustomerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOrderStore(mock)

	mock.ExpectQuery("SELECT .+ FROM orders o").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(orderColumns()))

	order, err := store.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_UpdateStatus_Applied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOrderStore(mock)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderStatusShipped, int64(100), domain.OrderStatusProcessing).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	applied, err := store.UpdateStatus(context.Background(), 100, domain.OrderStatusProcessing, domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_UpdateStatus_LostUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOrderStore(mock)

	// The row's status no longer matches the expected one: zero rows match.
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderStatusShipped, int64(100), domain.OrderStatusProcessing).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	applied, err := store.UpdateStatus(context.Background(), 100, domain.OrderStatusProcessing, domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_UpdateStatus_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewOrderStore(mock)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderStatusShipped, int64(100), domain.OrderStatusProcessing).
		WillReturnError(errors.New("connection reset"))

	_, err = store.UpdateStatus(context.Background(), 100, domain.OrderStatusProcessing, domain.OrderStatusShipped)
	assert.Error(t, err)
}
