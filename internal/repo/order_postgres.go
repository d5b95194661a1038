package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/webstore/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Create stores the order and its items in one transaction.
func (r *PostgresOrderRepository) Create(order *models.Order) (models.Order, error) {
	if order == nil {
		return models.Order{}, ErrInvalidArgument
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	created := *order
	if created.Date.IsZero() {
		created.Date = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_name, phone, address, description, date) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		created.User, created.Phone, created.Address, created.Description, created.Date,
	).Scan(&created.ID)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range created.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, name, price, quantity) VALUES ($1, $2, $3, $4, $5)`,
			created.ID, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return models.Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

const orderSelect = `SELECT o.id, o.user_name, o.phone, o.address, o.description, o.date,
	i.product_id, i.name, i.price, i.quantity
	FROM orders o LEFT JOIN order_items i ON i.order_id = o.id`

func (r *PostgresOrderRepository) GetUserOrders(user string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, orderSelect+` WHERE o.user_name = $1 ORDER BY o.date, o.id, i.id`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *PostgresOrderRepository) GetByID(id int) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, orderSelect+` WHERE o.id = $1 ORDER BY i.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil || len(orders) == 0 {
		return nil, err
	}
	return &orders[0], nil
}

// scanOrders folds joined order/item rows, which arrive grouped by order.
func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var (
			o         models.Order
			productID sql.NullInt64
			name      sql.NullString
			price     sql.NullFloat64
			quantity  sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.User, &o.Phone, &o.Address, &o.Description, &o.Date,
			&productID, &name, &price, &quantity); err != nil {
			return nil, err
		}

		if n := len(orders); n == 0 || orders[n-1].ID != o.ID {
			o.Items = []models.OrderItem{}
			orders = append(orders, o)
		}
		if productID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, models.OrderItem{
				ProductID: int(productID.Int64),
				Name:      name.String,
				Price:     price.Float64,
				Quantity:  int(quantity.Int64),
			})
		}
	}
	return orders, rows.Err()
}
