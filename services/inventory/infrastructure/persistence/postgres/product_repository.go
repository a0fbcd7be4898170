package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stockflow/backend/pkg/database"
	"github.com/stockflow/backend/pkg/events"
	invdomain "github.com/stockflow/backend/services/inventory/domain"
	domainevents "github.com/stockflow/backend/services/inventory/domain/events"
	"github.com/stockflow/backend/services/inventory/domain/models"
)

const productColumns = `id, user_id, name, sku, category, quantity, min_level, price, cost, status, supplier, created_at, updated_at`

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given pool
// and event bus. The bus publishes product events transactionally (outbox).
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Save persists a new Product and publishes ProductCreatedEvent within the
// same transaction. Returns ErrSKUAlreadyExists on unique constraint violations.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertProduct(ctx, tx, product); err != nil {
			return err
		}
		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// SaveBatch persists products in one transaction: a failure on any row rolls
// back every row. Events are published per row through the same transaction.
func (r *ProductRepository) SaveBatch(ctx context.Context, products []*models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, product := range products {
			if err := insertProduct(ctx, tx, product); err != nil {
				return err
			}
			if r.bus != nil {
				if err := r.publishCreated(tx, product); err != nil {
					return fmt.Errorf("publish product created: %w", err)
				}
			}
		}
		return nil
	})
}

func insertProduct(ctx context.Context, tx *sql.Tx, p *models.Product) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.UserID, p.Name, p.SKU.String(), p.Category, p.Quantity, p.MinLevel,
		p.Price, p.Cost, string(p.Status), p.Supplier, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: sku %q: %w", invdomain.ErrSKUAlreadyExists, p.SKU.String(), err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by ID scoped to the tenant.
// Returns ErrProductNotFound when no row matches.
func (r *ProductRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

// FindByUserID retrieves the tenant's full collection ordered by creation time descending.
func (r *ProductRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Update loads the current row FOR UPDATE, applies the patch through the
// domain rules (status rederivation included) and writes the result back.
// When the patch drives status to Low Stock or Out of Stock, a
// ProductLowStockEvent is published in the same transaction.
func (r *ProductRepository) Update(ctx context.Context, userID, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	var updated *models.Product
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1 AND user_id = $2
			FOR UPDATE`,
			id, userID,
		)
		current, err := scanProduct(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrProductNotFound
			}
			return fmt.Errorf("query product for update: %w", err)
		}

		prevStatus := current.Status
		if err := patch.Apply(current); err != nil {
			return fmt.Errorf("%w: %w", invdomain.ErrInvalidProduct, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET name = $3, sku = $4, category = $5, quantity = $6, min_level = $7,
			    price = $8, cost = $9, status = $10, supplier = $11, updated_at = $12
			WHERE id = $1 AND user_id = $2`,
			current.ID, current.UserID, current.Name, current.SKU.String(), current.Category,
			current.Quantity, current.MinLevel, current.Price, current.Cost,
			string(current.Status), current.Supplier, current.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: sku %q: %w", invdomain.ErrSKUAlreadyExists, current.SKU.String(), err)
			}
			return fmt.Errorf("update product: %w", err)
		}

		if r.bus != nil && current.Status != models.StatusInStock && current.Status != prevStatus {
			if err := r.publishLowStock(tx, current); err != nil {
				return fmt.Errorf("publish low stock: %w", err)
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

// Delete removes a product by ID scoped to the tenant.
// Returns ErrProductNotFound when no row matches.
func (r *ProductRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `
		DELETE FROM products
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return invdomain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, p *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  p.ID,
		UserID:     p.UserID,
		Name:       p.Name,
		SKU:        p.SKU.String(),
		Category:   p.Category,
		Quantity:   p.Quantity,
		MinLevel:   p.MinLevel,
		Price:      p.Price,
		Cost:       p.Cost,
		Status:     string(p.Status),
		Supplier:   p.Supplier,
		OccurredAt: p.CreatedAt,
	}
	return r.publishTx(tx, domainevents.TopicProductCreated, event.EventID, event)
}

func (r *ProductRepository) publishLowStock(tx *sql.Tx, p *models.Product) error {
	event := domainevents.ProductLowStockEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  p.ID,
		UserID:     p.UserID,
		Name:       p.Name,
		SKU:        p.SKU.String(),
		Quantity:   p.Quantity,
		MinLevel:   p.MinLevel,
		Status:     string(p.Status),
		OccurredAt: time.Now().UTC(),
	}
	return r.publishTx(tx, domainevents.TopicProductLowStock, event.EventID, event)
}

func (r *ProductRepository) publishTx(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct is the single point of row-to-aggregate translation for products.
func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p      models.Product
		sku    string
		status string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &sku, &p.Category, &p.Quantity, &p.MinLevel,
		&p.Price, &p.Cost, &status, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.SKU = models.SKU(sku)
	p.Status = models.Status(status)
	return &p, nil
}
