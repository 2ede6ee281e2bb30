package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ecomward/order-service/internal/adapter/storage"
	"github.com/ecomward/order-service/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// SaveOrder inserts a new order with its items in one transaction, or updates
// the mutable order fields when the order already has an id. Items are written
// only on first save: later saves are status-level updates.
func (or *Repository) SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var err error
	if order.ID == 0 {
		err = pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
			return or.insertOrder(ctx, tx, order)
		})
	} else {
		err = or.updateOrder(ctx, order)
	}

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) insertOrder(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	orderSt := or.db.QueryBuilder.
		Insert("orders").
		Columns("user_id", "total_amount", "status", "order_date", "shipping_address").
		Values(order.UserID, order.TotalAmount, order.Status, order.OrderDate, order.ShippingAddress).
		Suffix("returning id")

	sql, args, err := orderSt.ToSql()
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		itemSt := or.db.QueryBuilder.
			Insert("order_items").
			Columns("order_id", "product_id", "product_name", "quantity", "unit_price", "total_price").
			Values(item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice).
			Suffix("returning id")

		sql, args, err := itemSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (or *Repository) updateOrder(ctx context.Context, order *domain.Order) error {
	statement := or.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Set("total_amount", order.TotalAmount).
		Set("shipping_address", order.ShippingAddress).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "order_date", "shipping_address").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.OrderDate,
		&order.ShippingAddress,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = or.readItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (or *Repository) readItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("id", "order_id", "product_id", "product_name", "quantity", "unit_price", "total_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (or *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return or.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (or *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return or.listOrders(ctx, nil)
}

func (or *Repository) listOrders(ctx context.Context, where any) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "order_date", "shipping_address").
		From("orders").
		OrderBy("id")
	if where != nil {
		statement = statement.Where(where)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.Status,
			&order.OrderDate,
			&order.ShippingAddress,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = or.readItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (or *Repository) CountOrders(ctx context.Context) (int64, error) {
	statement := or.db.QueryBuilder.
		Select("count(*)").
		From("orders")

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	err = or.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
