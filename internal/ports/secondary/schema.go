package secondary

import (
	"context"

	"github.com/example/laramig/internal/models"
)

// SchemaSource defines the secondary port for loading schema elements
// (tables and anything else a diagram holds) from somewhere.
type SchemaSource interface {
	// LoadElements returns the elements in their owned order.
	LoadElements(ctx context.Context) ([]models.Element, error)

	// Describe names the source for log and console output.
	Describe() string
}
