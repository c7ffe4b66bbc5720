package templater

import (
	"context"

	"github.com/dmitrymomot/toolbox/pkg/async"
)

// RenderRequest is the input of RenderAsync.
type RenderRequest struct {
	Path string
	Data any
}

// RenderAsync runs Render in the background.
func (t *Templater) RenderAsync(ctx context.Context, req RenderRequest) *async.Future[string] {
	return async.Async(ctx, req, func(ctx context.Context, r RenderRequest) (string, error) {
		return t.Render(ctx, r.Path, r.Data)
	})
}
