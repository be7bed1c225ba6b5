package pipeline

import (
	"fmt"
	"log"

	"github.com/funvibe/cs2dec/internal/config"
	"github.com/funvibe/cs2dec/internal/params"
)

// ConfigProcessor loads ctx.ConfigPath into ctx.Config.
type ConfigProcessor struct{}

func (cp *ConfigProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Config != nil {
		return ctx
	}
	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Config = cfg
	return ctx
}

// StoreProcessor opens the parameter store named by the configuration.
type StoreProcessor struct{}

func (sp *StoreProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Store != nil {
		return ctx
	}
	if ctx.Config == nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("no configuration loaded"))
		return ctx
	}

	p := ctx.Config.Params
	log.Printf("Opening %s params from %s", p.Source, p.Path)
	switch p.Source {
	case config.SourceYAML:
		store, err := params.OpenYAML(p.Path)
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		ctx.Store = store
	case config.SourceSQLite:
		store, err := params.OpenSQLite(p.Path, p.Table)
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		ctx.Store = store
		ctx.AddCloser(store)
	default:
		ctx.Errors = append(ctx.Errors, fmt.Errorf("unknown params source %q", p.Source))
	}
	return ctx
}
