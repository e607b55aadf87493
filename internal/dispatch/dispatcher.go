package dispatch

import (
	"context"
	"sort"
	"time"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/cache"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/worker"
)

// Envelope is one provider's answer with its analysis attached.
type Envelope struct {
	Provider   string                `json:"provider" yaml:"provider"`
	Model      string                `json:"model" yaml:"model"`
	Response   string                `json:"response" yaml:"response"` // Visible text, HTML stripped
	FromCache  bool                  `json:"from_cache" yaml:"from_cache"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
	DurationMS int64                 `json:"duration_ms" yaml:"duration_ms"`
	Analysis   *model.PipelineReport `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Dispatcher fans a question out to every configured provider, analyzes each
// answer through the pipeline and returns the envelopes sorted by provider
// name. Provider failures are reported in their envelope, never fatal.
type Dispatcher struct {
	providers []Provider
	analyzer  worker.Analyzer
	cache     cache.Cache // nil disables caching
	limiter   *worker.Limiter
	cacheTTL  time.Duration
}

// NewDispatcher creates a dispatcher. cache may be nil.
func NewDispatcher(providers []Provider, analyzer worker.Analyzer, c cache.Cache, limiter *worker.Limiter, cacheTTL time.Duration) *Dispatcher {
	return &Dispatcher{
		providers: providers,
		analyzer:  analyzer,
		cache:     c,
		limiter:   limiter,
		cacheTTL:  cacheTTL,
	}
}

// Dispatch queries all providers concurrently and analyzes their answers.
func (d *Dispatcher) Dispatch(ctx context.Context, question string, opts model.AnalysisOptions) []Envelope {
	if len(d.providers) == 0 {
		return []Envelope{}
	}

	pool := worker.NewPool(len(d.providers))
	pool.Start()

	for _, p := range d.providers {
		pool.Submit(&askJob{
			dispatcher: d,
			provider:   p,
			ctx:        ctx,
			question:   question,
			opts:       opts,
		})
	}

	results := pool.Wait()

	envelopes := make([]Envelope, 0, len(results))
	for _, r := range results {
		envelopes = append(envelopes, r.(*askResult).envelope)
	}
	sort.Slice(envelopes, func(i, j int) bool {
		return envelopes[i].Provider < envelopes[j].Provider
	})

	return envelopes
}

// askJob queries one provider and analyzes the answer.
type askJob struct {
	dispatcher *Dispatcher
	provider   Provider
	ctx        context.Context
	question   string
	opts       model.AnalysisOptions
}

type askResult struct {
	envelope Envelope
	err      error
}

func (r *askResult) GetError() error {
	return r.err
}

// Execute runs under the pool; the caller's context governs the request.
func (j *askJob) Execute(poolCtx context.Context) worker.Result {
	d := j.dispatcher
	start := time.Now()

	envelope := Envelope{
		Provider: j.provider.Name(),
		Model:    j.provider.Model(),
	}

	text, fromCache, err := j.fetchAnswer()
	envelope.FromCache = fromCache
	if err != nil {
		envelope.Error = err.Error()
		envelope.DurationMS = time.Since(start).Milliseconds()
		return &askResult{envelope: envelope, err: err}
	}

	envelope.Response = StripHTML(text)
	envelope.Analysis = d.analyzer.Analyze(envelope.Response, j.question, j.opts)
	envelope.DurationMS = time.Since(start).Milliseconds()

	return &askResult{envelope: envelope}
}

// fetchAnswer returns the raw response, preferring the cache over the wire.
func (j *askJob) fetchAnswer() (string, bool, error) {
	d := j.dispatcher
	key := cache.ResponseKey(j.provider.Name(), j.provider.Model(), j.question)

	if d.cache != nil {
		if cached, found := d.cache.Get(key); found {
			return string(cached), true, nil
		}
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(j.ctx, j.provider.Name()); err != nil {
			return "", false, err
		}
	}

	text, err := j.provider.Ask(j.ctx, j.question)
	if err != nil {
		return "", false, err
	}

	if d.cache != nil {
		_ = d.cache.Set(key, []byte(text), d.cacheTTL)
	}

	return text, false, nil
}
