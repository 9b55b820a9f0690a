package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/hvgo/blobstore"
	"github.com/hupe1980/hvgo/frontio"
	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/resource"
	"golang.org/x/sync/errgroup"
)

// source is one front of the batch together with where it came from.
type source struct {
	File  string
	Index int // 1-based position inside File
}

// loadFronts reads every named file concurrently, bounded by the loader
// slots of the resource controller, and concatenates the fronts in argument
// order.
func (a *app) loadFronts(ctx context.Context, names []string) ([]model.Front, []source, error) {
	perFile := make([][]model.Front, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		if err := a.rc.AcquireLoader(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer a.rc.ReleaseLoader()

			start := time.Now()
			fronts, err := a.readFile(gctx, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			perFile[i] = fronts
			a.logger.Debug("file loaded", "name", name, "fronts", len(fronts), "duration", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		fronts  []model.Front
		sources []source
	)
	for i, fs := range perFile {
		for j, f := range fs {
			fronts = append(fronts, f)
			sources = append(sources, source{File: names[i], Index: j + 1})
		}
	}
	return fronts, sources, nil
}

func (a *app) readFile(ctx context.Context, name string) ([]model.Front, error) {
	rc, err := blobstore.OpenReader(ctx, a.store, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return frontio.Read(resource.NewRateLimitedReader(ctx, rc, a.rc))
}
