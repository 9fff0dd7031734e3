package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, customer_name, customer_phone, customer_address, product_id,
	product_name, amount, status, payment_id, payment_details, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*model.Order, error) {
	var (
		order     model.Order
		address   sql.NullString
		paymentID sql.NullString
		details   []byte
	)

	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerPhone,
		&address,
		&order.ProductID,
		&order.ProductName,
		&order.Amount,
		&order.Status,
		&paymentID,
		&details,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.CustomerAddress = address.String
	order.PaymentID = paymentID.String
	if len(details) > 0 {
		order.PaymentDetails = json.RawMessage(details)
	}

	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order model.Order) error {
	return r.executeWithRetry(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO orders (id, customer_name, customer_phone, customer_address, product_id, product_name, amount, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			order.ID,
			order.CustomerName,
			order.CustomerPhone,
			sql.NullString{String: order.CustomerAddress, Valid: order.CustomerAddress != ""},
			order.ProductID,
			order.ProductName,
			order.Amount,
			order.Status,
			order.CreatedAt,
		)
		return err
	})
}

func (r *Repository) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

		var err error
		order, err = scanOrder(row)
		return err
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetLatestPendingOrder resolves an order without an explicit id: the most
// recently created pending order whose phone (normalized to its last 10
// digits) and amount match the payment.
func (r *Repository) GetLatestPendingOrder(ctx context.Context, phone string, amount decimal.Decimal) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders
			WHERE RIGHT(regexp_replace(customer_phone, '\D', '', 'g'), 10) = $1
				AND amount = $2
				AND status = 'pending'
			ORDER BY created_at DESC
			LIMIT 1`,
			phone, amount)

		var err error
		order, err = scanOrder(row)
		return err
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// MarkOrderPaid performs the conditional pending/failed -> paid transition.
// The status guard lives in the WHERE clause so two concurrent deliveries of
// the same notification cannot both apply it; whichever write runs second
// touches zero rows and gets ErrOrderConflict.
func (r *Repository) MarkOrderPaid(ctx context.Context, id, paymentID string, paymentDetails json.RawMessage) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx,
			`UPDATE orders SET status = $1, payment_id = $2, payment_details = $3
			WHERE id = $4 AND status IN ($5, $6)`,
			model.OrderStatusPaid,
			paymentID,
			[]byte(paymentDetails),
			id,
			model.OrderStatusPending,
			model.OrderStatusFailed,
		)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrOrderConflict
	}

	return nil
}

func (r *Repository) GetOrdersByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	orders := make([]model.Order, 0)

	err := r.executeWithRetry(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT `+orderColumns+` FROM orders
			WHERE RIGHT(regexp_replace(customer_phone, '\D', '', 'g'), 10) = $1
			ORDER BY created_at DESC`,
			phone)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			order, err := scanOrder(rows)
			if err != nil {
				return err
			}
			orders = append(orders, *order)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)

	err := r.executeWithRetry(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			order, err := scanOrder(rows)
			if err != nil {
				return err
			}
			orders = append(orders, *order)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// SetOrderStatus applies an administrator transition (dispatched, delivered).
func (r *Repository) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx,
			`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) DeleteOrder(ctx context.Context, id string) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}
