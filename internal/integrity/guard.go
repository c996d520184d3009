// Package integrity holds the cross-table rules the controllers enforce:
// blocking deletes that would orphan rows, and the truck repair counter.
package integrity

import (
	"context"

	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/store"
)

// DependentGuard refuses a delete while rows of D still point at the target.
type DependentGuard[D any] struct {
	dependents store.Repository[D]
	column     string
	message    string
	failure    string
}

// NewDependentGuard checks dependents.column == id. message is returned as a
// HasDependents error; failure is the client message if the check itself fails.
func NewDependentGuard[D any](dependents store.Repository[D], column, message, failure string) *DependentGuard[D] {
	return &DependentGuard[D]{dependents: dependents, column: column, message: message, failure: failure}
}

func (g *DependentGuard[D]) Check(ctx context.Context, id uint) error {
	found, err := g.dependents.Exists(ctx, store.Where{g.column: id})
	if err != nil {
		return httperr.Store(err, g.failure)
	}
	if found {
		return httperr.New(httperr.HasDependents, g.message)
	}
	return nil
}
