package apply

import (
	"context"

	"github.com/ibidem-no/yakup/internal/generate"
)

// Run applies ops in order against the cluster through e, short-circuiting
// on the first failure (spec section 4.5: any C1 failure abandons the rest
// of the operation list for this reconcile; the next requeue re-derives and
// retries the whole list).
func Run(ctx context.Context, e *Engine, ops []generate.Operation) error {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case generate.CreateOrUpdate:
			err = e.CreateOrUpdate(ctx, op.Object)
		case generate.DeleteIfExists:
			err = e.DeleteIfExists(ctx, op.Object)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
