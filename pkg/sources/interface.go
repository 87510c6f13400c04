package sources

import (
	"context"

	"github.com/kerbaras/purrfect/pkg/data"
)

type Source interface {
	// Images returns one page of images, newest first. Pages start at 1.
	Images(ctx context.Context, page, limit int) ([]data.Image, error)
}
