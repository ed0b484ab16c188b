package pipeline

import (
	"errors"

	"lazyseq/seqs"
)

const (
	DefaultMaxItems = 100
	DefaultMaxPulls = 1_000_000
)

// Options bound an evaluation.
type Options struct {
	// MaxItems caps the number of elements collected by a pipeline without a sink.
	MaxItems int
	// MaxPulls caps the number of elements drawn from the source over all passes,
	// so that sinks over infinite sources fail instead of hanging.
	MaxPulls int
}

func (o Options) withDefaults() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.MaxPulls <= 0 {
		o.MaxPulls = DefaultMaxPulls
	}
	return o
}

// Result is the outcome of an evaluation. With a sink, Value holds its result
// (nil when the sequence was empty); otherwise Items holds the elements.
type Result struct {
	Items     []any
	Value     any
	HasValue  bool
	Truncated bool
	Pulls     int
}

// Histogram returns the sink value of a histogram pipeline.
func (r Result) Histogram() (*seqs.Histogram[any], bool) {
	h, ok := r.Value.(*seqs.Histogram[any])
	return h, ok
}

// Eval runs the pipeline. Element errors such as dividing by zero or adding a
// string are returned wrapping ErrEval.
func (p *Pipeline) Eval(opts Options) (res Result, err error) {
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrEval) {
				res, err = Result{Pulls: res.Pulls}, e
				return
			}
			panic(r)
		}
	}()

	s := seqs.Peek(p.source, func(any) {
		res.Pulls++
		if res.Pulls > opts.MaxPulls {
			panic(evalErrorf("more than %d elements pulled from %s; is the source infinite?",
				opts.MaxPulls, p.Steps[0].Name))
		}
	})
	for _, stage := range p.stages {
		s = stage(s)
	}

	if p.sink != nil {
		res.Value = p.sink(s)
		res.HasValue = true
		return res, nil
	}
	items := s.Take(opts.MaxItems + 1).Collect()
	if len(items) > opts.MaxItems {
		items = items[:opts.MaxItems]
		res.Truncated = true
	}
	res.Items = items
	return res, nil
}

// Eval parses and evaluates text in one go.
func Eval(text string, opts Options) (Result, error) {
	p, err := Parse(text)
	if err != nil {
		return Result{}, err
	}
	return p.Eval(opts)
}
