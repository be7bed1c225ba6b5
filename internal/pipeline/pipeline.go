package pipeline

import (
	"io"

	"github.com/funvibe/cs2dec/internal/config"
	"github.com/funvibe/cs2dec/internal/params"
)

// PipelineContext carries state between warm-up stages.
type PipelineContext struct {
	ConfigPath string
	Config     *config.Config
	Store      params.Store

	// AttributeCount is the attribute table size after population.
	AttributeCount int

	Errors  []error
	closers []io.Closer
}

// NewContext creates a context for the configuration file at path.
func NewContext(configPath string) *PipelineContext {
	return &PipelineContext{ConfigPath: configPath}
}

// Failed reports whether any stage recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// AddCloser registers a resource to release in Close.
func (ctx *PipelineContext) AddCloser(c io.Closer) {
	ctx.closers = append(ctx.closers, c)
}

// Close releases resources opened by the stages.
func (ctx *PipelineContext) Close() error {
	var first error
	for i := len(ctx.closers) - 1; i >= 0; i-- {
		if err := ctx.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	ctx.closers = nil
	return first
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages after the first failure are skipped
// since each one depends on the output of the previous.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Failed() {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
