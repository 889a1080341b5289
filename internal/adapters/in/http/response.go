package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
)

// OrderItemResponse is one line item of an order payload.
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// OrderResponse is the API shape of an order snapshot.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate time.Time           `json:"delivery_date"`
	Status       string              `json:"status"`
	Price        float64             `json:"price"`
	Version      int64               `json:"version"`
	Items        []OrderItemResponse `json:"items"`
}

func toOrderResponse(snapshot queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			Quantity:    item.Quantity,
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return OrderResponse{
		ID:           snapshot.ID.String(),
		CustomerID:   snapshot.CustomerID.String(),
		OrderDate:    snapshot.OrderDate,
		DeliveryDate: snapshot.DeliveryDate,
		Status:       snapshot.Status,
		Price:        snapshot.Price,
		Version:      snapshot.Version,
		Items:        items,
	}
}
