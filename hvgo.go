package hvgo

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/hvgo/internal/wfg"
	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/pareto"
	"github.com/hupe1980/hvgo/rect"
)

// Engine computes hypervolumes and decompositions for batches of fronts.
// It is safe for concurrent use; every call owns its scratch state.
type Engine struct {
	opts options
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	return &Engine{opts: applyOptions(optFns)}
}

// Hypervolume is a convenience wrapper that computes the hypervolume of a
// single front given as rows with a default Engine. A nil ref is the origin.
func Hypervolume(points [][]float64, ref []float64) (float64, error) {
	vols, err := New().Hypervolume([]model.Front{model.FromRows(points)}, ref)
	if err != nil {
		return 0, err
	}
	return vols[0], nil
}

// Hypervolume returns the hypervolume of every front relative to ref.
// A nil ref is the origin.
//
// A front with no points or no objectives has volume 0. The first error
// aborts the whole batch.
func (e *Engine) Hypervolume(fronts []model.Front, ref model.Reference) ([]float64, error) {
	out := make([]float64, len(fronts))
	err := e.run(fronts, ref, false, func(i int, b *batch, f model.Front) error {
		v, err := b.volume(f.Objectives)
		out[i] = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decompose returns for every front a signed rectangle list whose signed
// volume equals the front's hypervolume relative to ref. Bounds are given
// in translated coordinates, with the reference at the origin.
//
// A front with no points yields an empty list with one column per
// objective. A front with points but no objectives fails with
// ErrUndefinedZeroObjectives.
func (e *Engine) Decompose(fronts []model.Front, ref model.Reference) ([]*rect.List, error) {
	out := make([]*rect.List, len(fronts))
	err := e.run(fronts, ref, true, func(i int, b *batch, f model.Front) error {
		l, err := b.rects(f)
		out[i] = l
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// batch owns the scratch shared by all fronts of one call, sized for the
// largest front.
type batch struct {
	ctx        *wfg.Context
	scratch    *wfg.Front
	translated []float64
	work       *rect.List
	points     int // non-dominated points loaded into scratch
}

func (e *Engine) run(fronts []model.Front, ref model.Reference, decompose bool, fn func(i int, b *batch, f model.Front) error) (err error) {
	start := time.Now()
	var (
		maxm, maxn int
		bytes      int64
	)
	defer func() {
		elapsed := time.Since(start)
		e.opts.logger.LogBatch(len(fronts), maxm, maxn, bytes, elapsed, err)
		e.opts.metricsCollector.RecordBatch(len(fronts), elapsed, err)
	}()

	for i, f := range fronts {
		if verr := validate(f, ref); verr != nil {
			return fmt.Errorf("front %d: %w", i, translateError(verr))
		}
		maxm = max(maxm, f.Points)
		maxn = max(maxn, f.Objectives)
	}

	bytes = scratchBytes(maxm, maxn, decompose, e.opts.initialRects)
	if !e.opts.controller.TryAcquireMemory(bytes) {
		return fmt.Errorf("%w: %d bytes", ErrAllocation, bytes)
	}
	defer e.opts.controller.ReleaseMemory(bytes)

	b := &batch{
		ctx:        wfg.NewContext(maxm, maxn),
		scratch:    wfg.NewFront(maxm, maxn),
		translated: make([]float64, maxm*maxn),
	}
	if decompose {
		b.work = rect.New(maxn, e.opts.initialRects)
		b.work.SetMaxLen(e.opts.maxRectangles)
	}

	for i, f := range fronts {
		frontStart := time.Now()
		ferr := b.load(f, ref)
		if ferr == nil {
			ferr = fn(i, b, f)
		}
		elapsed := time.Since(frontStart)
		e.opts.logger.LogFront(i, f.Points, b.points, f.Objectives, elapsed, ferr)
		e.opts.metricsCollector.RecordFront(f.Points, f.Objectives, elapsed, ferr)
		if ferr != nil {
			return fmt.Errorf("front %d: %w", i, translateError(ferr))
		}
	}
	return nil
}

func validate(f model.Front, ref model.Reference) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Points == 0 && f.Objectives == 0 {
		return nil
	}
	return ref.Check(f.Objectives)
}

// scratchBytes estimates the memory one batch holds: the recursion stack,
// the translated copy, the scratch front and the initial rectangle buffer.
func scratchBytes(maxm, maxn int, decompose bool, rects int) int64 {
	total := wfg.ScratchBytes(maxm, maxn) + 2*int64(maxm)*int64(maxn)*8
	if decompose {
		total += int64(rects) * (2*int64(maxn)*8 + 1)
	}
	return total
}

// load translates f relative to ref and copies its non-dominated points
// into the scratch front.
func (b *batch) load(f model.Front, ref model.Reference) error {
	d := f.Objectives
	b.points = 0
	if f.Points == 0 || d == 0 {
		return b.scratch.Resize(0, d)
	}

	data := b.translated[:f.Points*d]
	for i := 0; i < f.Points; i++ {
		row := data[i*d : (i+1)*d]
		for j := range row {
			row[j] = math.Abs(f.At(i, j) - ref.Coord(j))
		}
	}

	// The 2-D staircase is only valid on mutually non-dominated points.
	res, err := pareto.Find(model.Front{Points: f.Points, Objectives: d, Data: data}, pareto.WithMaximize())
	if err != nil {
		return err
	}
	mask := pareto.NonDominatedMask(res)

	if err := b.scratch.Resize(int(mask.GetCardinality()), d); err != nil {
		return err
	}
	k := 0
	it := mask.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		b.scratch.Set(k, data[pos*d:(pos+1)*d])
		k++
	}
	b.points = k
	return nil
}

func (b *batch) volume(d int) (float64, error) {
	switch {
	case b.points == 0 || d == 0:
		return 0, nil
	case d == 1:
		return b.maxFirst(), nil
	}
	if err := b.ctx.Reset(d); err != nil {
		return 0, err
	}
	return b.ctx.HV(b.scratch)
}

func (b *batch) rects(f model.Front) (*rect.List, error) {
	d := f.Objectives
	if f.Points == 0 {
		return rect.New(d, 0), nil
	}
	if d == 0 {
		return nil, ErrUndefinedZeroObjectives
	}

	b.work.Reset(d)
	if d == 1 {
		i, err := b.work.Append(+1)
		if err != nil {
			return nil, err
		}
		b.work.Upper(i)[0] = b.maxFirst()
		return b.work.Clone(), nil
	}

	if err := b.ctx.Reset(d); err != nil {
		return nil, err
	}
	if err := b.ctx.Decompose(b.scratch, b.work); err != nil {
		return nil, err
	}
	return b.work.Clone(), nil
}

func (b *batch) maxFirst() float64 {
	v := 0.0
	for _, p := range b.scratch.Points[:b.points] {
		v = max(v, p.Objectives[0])
	}
	return v
}
