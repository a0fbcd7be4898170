package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/database"
	customerdomain "github.com/stockflow/backend/services/customer/domain"
	"github.com/stockflow/backend/services/customer/domain/models"
)

const customerColumns = `id, user_id, name, email, phone, address, created_at`

// CustomerRepository implements repositories.CustomerRepository against PostgreSQL.
type CustomerRepository struct {
	db *database.Database
}

// NewCustomerRepository returns a CustomerRepository backed by the given pool.
func NewCustomerRepository(db *database.Database) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Save persists a new customer row.
func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		customer.ID, customer.UserID, customer.Name,
		customer.Email, customer.Phone, customer.Address, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer scoped to the tenant.
func (r *CustomerRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Customer, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerdomain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return customer, nil
}

// FindByUserID retrieves the tenant's customers, newest first.
func (r *CustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Customer, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var customers []*models.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// Update loads the customer FOR UPDATE, applies the patch through the domain
// rules and writes the result back.
func (r *CustomerRepository) Update(ctx context.Context, userID, id uuid.UUID, patch models.CustomerPatch) (*models.Customer, error) {
	var updated *models.Customer
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+customerColumns+`
			FROM customers
			WHERE id = $1 AND user_id = $2
			FOR UPDATE`,
			id, userID,
		)
		current, err := scanCustomer(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return customerdomain.ErrCustomerNotFound
			}
			return fmt.Errorf("query customer for update: %w", err)
		}

		if err := patch.Apply(current); err != nil {
			return fmt.Errorf("%w: %w", customerdomain.ErrInvalidCustomer, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE customers
			SET name = $3, email = $4, phone = $5, address = $6
			WHERE id = $1 AND user_id = $2`,
			current.ID, current.UserID, current.Name,
			current.Email, current.Phone, current.Address,
		)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the customer row.
func (r *CustomerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `
		DELETE FROM customers
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer rows affected: %w", err)
	}
	if affected == 0 {
		return customerdomain.ErrCustomerNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer is the single point of row-to-aggregate translation for customers.
func scanCustomer(row rowScanner) (*models.Customer, error) {
	var (
		c       models.Customer
		email   sql.NullString
		phone   sql.NullString
		address sql.NullString
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &email, &phone, &address, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if address.Valid {
		c.Address = &address.String
	}
	return &c, nil
}
