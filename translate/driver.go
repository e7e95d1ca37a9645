package translate

import (
	"context"
	"time"

	"github.com/kbukum/dataflow/config"
	"github.com/kbukum/dataflow/errors"
	"github.com/kbukum/dataflow/graph"
	"github.com/kbukum/dataflow/logger"
	"github.com/kbukum/dataflow/observability"
	"github.com/kbukum/dataflow/pipeline"
)

const instrumentationName = "github.com/kbukum/dataflow/translate"

// Result holds the lowered graphs of one translation run. Init carries
// bootstrap steps that materialize views; Execution carries everything
// else.
type Result struct {
	Init      *graph.Graph[Step, Tag]
	Execution *graph.Graph[Step, Tag]
}

// Translator lowers whole pipelines. It is safe to reuse across runs;
// each run gets a fresh TranslationContext.
type Translator struct {
	opts    *config.Options
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewTranslator creates a translator from the given options. A nil
// opts gets defaults for an anonymous job.
func NewTranslator(opts *config.Options) (*Translator, error) {
	if opts == nil {
		opts = config.Default("dataflow")
	}
	metrics, err := observability.NewMetrics(observability.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}
	return &Translator{
		opts:    opts,
		log:     logger.New(&opts.Logging, opts.JobName).WithComponent("translator"),
		metrics: metrics,
	}, nil
}

// Translate validates the pipeline and lowers every leaf node into the
// init or execution graph. Both lowered graphs are checked for cycles
// before the result is returned.
func (t *Translator) Translate(ctx context.Context, p *pipeline.Pipeline) (*Result, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanTranslatePipeline)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrPipelineName, p.Name())

	result, err := t.translate(ctx, p)
	if err != nil {
		observability.SetSpanError(ctx, err)
		t.metrics.RecordError(ctx, string(errors.CodeOf(err)))
		t.metrics.RecordPipeline(ctx, p.Name(), "error", time.Since(start))
		t.log.Error("translation failed", logger.Fields(
			logger.FieldPipeline, p.Name(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	observability.SetSpanAttribute(ctx, observability.AttrStepCount, result.Execution.Len())
	t.metrics.RecordPipeline(ctx, p.Name(), "ok", time.Since(start))
	t.log.Info("translated pipeline", logger.Fields(
		logger.FieldPipeline, p.Name(),
		"init_steps", result.Init.Len(),
		"execution_steps", result.Execution.Len(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return result, nil
}

func (t *Translator) translate(ctx context.Context, p *pipeline.Pipeline) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tc := NewTranslationContext(t.opts)
	user := tc.UserGraphContext()

	err := p.Walk(func(n *pipeline.Node) error {
		nodeCtx, nodeSpan := observability.StartSpan(ctx, observability.SpanTranslateNode)
		defer nodeSpan.End()
		observability.SetSpanAttribute(nodeCtx, observability.AttrNodeName, n.FullName())
		observability.SetSpanAttribute(nodeCtx, observability.AttrNodeKind, n.Kind().String())

		scope := user.SetCurrentNode(n)
		inputs, err := scope.InputTags()
		if err != nil {
			observability.SetSpanError(nodeCtx, err)
			return err
		}
		outputs, err := scope.OutputTags()
		if err != nil {
			observability.SetSpanError(nodeCtx, err)
			return err
		}

		step := Step{Name: scope.StepName(), Kind: n.Kind()}
		if n.Kind() == pipeline.KindCreateView {
			tc.AddInitStep(step, inputs, outputs)
		} else {
			user.AddStep(step, inputs, outputs)
		}
		t.metrics.RecordNode(nodeCtx, n.Kind().String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := tc.InitGraph().ReverseTopologicalOrder(); err != nil {
		return nil, err
	}
	if _, err := user.Graph().ReverseTopologicalOrder(); err != nil {
		return nil, err
	}

	t.metrics.RecordTagBindings(ctx, user.Registry().Len())
	observability.SetSpanAttribute(ctx, observability.AttrTagCount, user.Registry().Len())

	return &Result{Init: tc.InitGraph(), Execution: user.Graph()}, nil
}

// Translate is a convenience for one-shot lowering with the given
// options.
func Translate(ctx context.Context, p *pipeline.Pipeline, opts *config.Options) (*Result, error) {
	tr, err := NewTranslator(opts)
	if err != nil {
		return nil, err
	}
	return tr.Translate(ctx, p)
}
