package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order snapshots from the database, one item
// sub-query per order. Order volumes here are small; the read path favors
// simplicity over join gymnastics.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query. Results are sorted by order ID for
// consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			order_date,
			delivery_date,
			status,
			version
		FROM orders
		ORDER BY id
	`
	args := make([]any, 0, 1)
	if status, ok := query.Status(); ok {
		sqlQuery = `
			SELECT
				id,
				customer_id,
				order_date,
				delivery_date,
				status,
				version
			FROM orders
			WHERE status = ?
			ORDER BY id
		`
		args = append(args, status.String())
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         GetOrderQueryResponse
			id           uuid.UUID
			customerID   uuid.UUID
			orderDate    time.Time
			deliveryDate time.Time
		)

		err = rows.Scan(&id, &customerID, &orderDate, &deliveryDate, &resp.Status, &resp.Version)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.OrderIDFromString(id.String())
		if err != nil {
			return nil, err
		}
		resp.CustomerID, err = kernel.CustomerIDFromString(customerID.String())
		if err != nil {
			return nil, err
		}
		resp.OrderDate = orderDate
		resp.DeliveryDate = deliveryDate
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, orders[i].Price, err = loadOrderItems(ctx, h.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}
