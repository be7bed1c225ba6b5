package symbols

import (
	"fmt"
	"log"

	"github.com/funvibe/cs2dec/internal/pipeline"
)

// AttributeProcessor populates a table from ctx.Store.
type AttributeProcessor struct {
	// Table defaults to the process-wide Attributes.
	Table *AttributeTable
}

func (ap *AttributeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Store == nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("no parameter store opened"))
		return ctx
	}
	table := ap.Table
	if table == nil {
		table = Attributes
	}

	log.Printf("Populating params...")
	n, err := table.Populate(ctx.Store)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	log.Printf("Populated %d params", n)
	ctx.AttributeCount = n
	return ctx
}
