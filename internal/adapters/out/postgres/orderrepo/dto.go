// Package orderrepo implements order aggregate persistence over GORM. The
// aggregate is stored as one order row plus one child row per line item;
// mapping between domain objects and rows lives here.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Version backs the
// optimistic concurrency check in Save.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	OrderDate    time.Time      `gorm:"not null"`
	DeliveryDate time.Time      `gorm:"not null"`
	Status       string         `gorm:"type:varchar(16);index;not null"`
	Version      int64          `gorm:"not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database row for one line item. Rows are replaced
// wholesale on every save; the surrogate key only provides stable ordering.
type OrderItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"not null"`
	Name        string
	Description string
	UnitPrice   float64 `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// The derived price is intentionally not stored.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID().Bytes()

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:     orderID,
			ProductID:   item.ProductID().UUID().Bytes(),
			Quantity:    item.Quantity().Value(),
			Name:        item.Name().Value(),
			Description: item.Description().Value(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   aggregate.CustomerID().UUID().Bytes(),
		OrderDate:    aggregate.OrderDate().Time(),
		DeliveryDate: aggregate.DeliveryDate().Time(),
		Status:       aggregate.Status().String(),
		Version:      aggregate.Version(),
		Items:        itemDTOs,
	}
}

// toDomain reconstructs the order aggregate from its rows via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.CustomerIDFromString(dto.CustomerID.String())
	if err != nil {
		return nil, err
	}

	orderDate, err := order.NewOrderDate(dto.OrderDate)
	if err != nil {
		return nil, err
	}

	deliveryDate, err := order.NewDeliveryDate(dto.DeliveryDate)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.ProductIDFromString(itemDTO.ProductID.String())
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewLineItem(
			productID, itemDTO.Quantity, itemDTO.Name, itemDTO.Description, itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, orderDate, deliveryDate, status, items, dto.Version)
}
