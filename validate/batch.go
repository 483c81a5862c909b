package validate

import (
	"context"
	"iter"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one document of a batch.
type BatchResult struct {
	Name string
	Result
}

// Batch validates independent documents in parallel and returns their
// results in input order. It stops early only if ctx is cancelled.
func Batch(ctx context.Context, docs iter.Seq2[string, []byte], opts ...Option) ([]BatchResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	log := zerolog.Ctx(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	var results []*BatchResult
	for name, data := range docs {
		if gctx.Err() != nil {
			break
		}
		br := &BatchResult{Name: name}
		results = append(results, br)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			br.Result = o.document(data)
			if !br.Valid() {
				log.Debug().
					Str("document", name).
					Int("errors", len(br.Errors())).
					Msg("document is invalid")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]BatchResult, len(results))
	for i, br := range results {
		out[i] = *br
	}
	return out, nil
}
