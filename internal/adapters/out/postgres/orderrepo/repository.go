package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "id = ?", id.UUID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the orders matching the given identifiers. Missing ids
// are skipped.
func (r *GormOrderRepository) GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error) {
	rawIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.UUID().Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAll retrieves every persisted order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Save upserts the aggregate with an optimistic concurrency check. An insert
// stores version 1; an update only succeeds when the stored version still
// matches the version the aggregate was loaded with, and bumps it by one.
// Line item rows are replaced wholesale. On success the aggregate's version
// is advanced via MarkSaved.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	db := r.db.WithContext(ctx)

	if dto.Version == 0 {
		dto.Version = 1
		if err := db.Create(&dto).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.NewConcurrentModificationError("orderId", aggregate.ID().String(), aggregate.Version())
			}
			return err
		}
	} else {
		loadedVersion := dto.Version
		dto.Version = loadedVersion + 1

		result := db.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, loadedVersion).
			Updates(map[string]any{
				"customer_id":   dto.CustomerID,
				"order_date":    dto.OrderDate,
				"delivery_date": dto.DeliveryDate,
				"status":        dto.Status,
				"version":       dto.Version,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrentModificationError("orderId", aggregate.ID().String(), loadedVersion)
		}

		if err := db.Delete(&OrderItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
			return err
		}
	}

	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	aggregate.MarkSaved(dto.Version)
	return nil
}

// Delete removes the aggregate and its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Delete(&OrderItemDTO{}, "order_id = ?", id.UUID().Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.UUID().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
