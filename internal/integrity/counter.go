package integrity

import (
	"context"

	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

// RepairCounter keeps Truck.NumberOfRepairs in step with repair create and delete.
// It writes only the counter column. There is no transaction around the
// counter write and the repair row write.
type RepairCounter struct {
	trucks store.Repository[models.Truck]
}

func NewRepairCounter(trucks store.Repository[models.Truck]) *RepairCounter {
	return &RepairCounter{trucks: trucks}
}

// Increment bumps the loaded truck's counter and persists it.
func (rc *RepairCounter) Increment(ctx context.Context, truck *models.Truck) error {
	return rc.set(ctx, truck, truck.NumberOfRepairs+1)
}

// Decrement lowers the loaded truck's counter and persists it.
func (rc *RepairCounter) Decrement(ctx context.Context, truck *models.Truck) error {
	return rc.set(ctx, truck, truck.NumberOfRepairs-1)
}

func (rc *RepairCounter) set(ctx context.Context, truck *models.Truck, n int) error {
	if err := rc.trucks.Update(ctx, truck.ID, map[string]any{models.NumberOfRepairsColumn: n}); err != nil {
		return err
	}
	truck.NumberOfRepairs = n
	return nil
}
