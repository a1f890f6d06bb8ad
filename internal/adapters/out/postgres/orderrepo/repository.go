package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM assigned order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assigned order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.AssignedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assigned order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.AssignedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"courier_id":   dto.CourierID,
		"location_lat": dto.Location.Lat,
		"location_lng": dto.Location.Lng,
		"status":       dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignedOrderID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assigned order by its delivery record identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.AssignedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignedOrderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves an assigned order by its commerce order link.
func (r *GormOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.AssignedOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every assigned order still waiting for a courier.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.AssignedOrder, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", order.Pending).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.AssignedOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AcceptPending atomically claims a pending order for a courier.
// A single conditional UPDATE guarded by the pending status settles races:
// whoever flips the row first wins, everyone else sees zero affected rows and
// gets order.ErrOrderAlreadyTaken. An unknown id is reported as not found.
func (r *GormOrderRepository) AcceptPending(ctx context.Context, id kernel.UUID, courierID kernel.UUID) error {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return err
	}

	rawCourierID := courierID.Bytes()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), order.Pending).
		Updates(map[string]any{
			"courier_id": rawCourierID,
			"status":     int(order.Accepted),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("assignedOrderID", id.String())
		}
		return order.ErrOrderAlreadyTaken
	}

	return nil
}
