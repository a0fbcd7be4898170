package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/database"
	"github.com/stockflow/backend/pkg/events"
	orderdomain "github.com/stockflow/backend/services/order/domain"
	domainevents "github.com/stockflow/backend/services/order/domain/events"
	"github.com/stockflow/backend/services/order/domain/models"
)

const orderColumns = `id, user_id, number, customer_name, total, status, items_count, created_at`

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository backed by the given pool and
// event bus. The bus publishes OrderCreatedEvents transactionally (outbox).
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

// Save persists the order and its line items and publishes OrderCreatedEvent,
// all within one transaction.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, order.UserID, order.Number, order.CustomerName,
			order.Total, string(order.Status), order.ItemsCount, order.Date,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if err := insertItems(ctx, tx, order.Items); err != nil {
			return err
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, order); err != nil {
				return fmt.Errorf("publish order created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an order with its line items, scoped to the tenant.
func (r *OrderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	items, err := findItems(ctx, r.db.DB(), id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// FindByUserID retrieves the tenant's orders, newest first, aggregates only.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// Update loads the order and its line items FOR UPDATE, applies the patch
// through the domain rules and writes the result back. Loading the items
// first lets the domain keep the aggregates derived from them; a patch that
// replaces items deletes the old rows and inserts the new set in the same
// transaction.
func (r *OrderRepository) Update(ctx context.Context, userID, id uuid.UUID, patch models.OrderPatch) (*models.Order, error) {
	var updated *models.Order
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE id = $1 AND user_id = $2
			FOR UPDATE`,
			id, userID,
		)
		current, err := scanOrder(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return orderdomain.ErrOrderNotFound
			}
			return fmt.Errorf("query order for update: %w", err)
		}

		current.Items, err = findItems(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := patch.Apply(current); err != nil {
			return fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE orders
			SET customer_name = $3, total = $4, status = $5, items_count = $6
			WHERE id = $1 AND user_id = $2`,
			current.ID, current.UserID, current.CustomerName,
			current.Total, string(current.Status), current.ItemsCount,
		)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if patch.Items != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, current.ID); err != nil {
				return fmt.Errorf("delete order items: %w", err)
			}
			if err := insertItems(ctx, tx, current.Items); err != nil {
				return err
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the order and its line items atomically. The original
// client issued two sequential non-transactional calls; here a mid-sequence
// failure rolls back both.
func (r *OrderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM orders
			WHERE id = $1 AND user_id = $2`,
			id, userID,
		)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete order rows affected: %w", err)
		}
		if affected == 0 {
			return orderdomain.ErrOrderNotFound
		}
		return nil
	})
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func findItems(ctx context.Context, q querier, orderID uuid.UUID) ([]models.OrderItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

func insertItems(ctx context.Context, tx *sql.Tx, items []models.OrderItem) error {
	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepository) publishCreated(tx *sql.Tx, order *models.Order) error {
	event := domainevents.OrderCreatedEvent{
		EventID:      uuid.New(),
		Version:      1,
		OrderID:      order.ID,
		UserID:       order.UserID,
		Number:       order.Number,
		CustomerName: order.CustomerName,
		Total:        order.Total,
		Status:       string(order.Status),
		ItemsCount:   order.ItemsCount,
		OccurredAt:   order.Date,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicOrderCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder is the single point of row-to-aggregate translation for orders.
func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o      models.Order
		status string
	)
	err := row.Scan(&o.ID, &o.UserID, &o.Number, &o.CustomerName, &o.Total, &status, &o.ItemsCount, &o.Date)
	if err != nil {
		return nil, err
	}
	o.Status = models.OrderStatus(status)
	return &o, nil
}
