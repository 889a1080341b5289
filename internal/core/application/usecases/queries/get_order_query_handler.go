package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order snapshot straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. A missing order yields an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp         GetOrderQueryResponse
		id           uuid.UUID
		customerID   uuid.UUID
		orderDate    time.Time
		deliveryDate time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_date,
			delivery_date,
			status,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&id, &customerID, &orderDate, &deliveryDate, &resp.Status, &resp.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = orderIDFromScanned(id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.CustomerIDFromString(customerID.String())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.OrderDate = orderDate
	resp.DeliveryDate = deliveryDate

	resp.Items, resp.Price, err = loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func loadOrderItems(
	ctx context.Context, db *gorm.DB, orderID kernel.OrderID,
) ([]OrderItemResponse, float64, error) {
	items := make([]OrderItemResponse, 0)
	price := 0.0

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			name,
			description,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      OrderItemResponse
			productID uuid.UUID
		)

		err = rows.Scan(&productID, &item.Quantity, &item.Name, &item.Description, &item.UnitPrice)
		if err != nil {
			return nil, 0, err
		}

		item.ProductID, err = kernel.ProductIDFromString(productID.String())
		if err != nil {
			return nil, 0, err
		}
		item.Total = float64(item.Quantity) * item.UnitPrice
		price += item.Total
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, price, nil
}

func orderIDFromScanned(id uuid.UUID) (kernel.OrderID, error) {
	return kernel.OrderIDFromString(id.String())
}
