// Package orchestration drives a fairness evaluation end to end: load the
// dataset, obtain one prediction per row from the inference client, compute
// the metrics, and assemble the report.
package orchestration

import (
	"context"
	"sync"
	"time"

	"github.com/fairbench/faircheck/internal/config"
	"github.com/fairbench/faircheck/internal/dataset"
	"github.com/fairbench/faircheck/internal/inference"
	"github.com/fairbench/faircheck/internal/metrics"
	"github.com/fairbench/faircheck/internal/models"
)

// Inferrer obtains one prediction per sample. *inference.Client satisfies
// it; tests substitute scripted fakes.
type Inferrer interface {
	Infer(ctx context.Context, sample any) (int, error)
	Close()
}

// State is the runner's position in its lifecycle.
type State string

// Runner states. Failed is terminal and reachable from any non-terminal
// state; Done is terminal.
const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateInferring   State = "inferring"
	StateAggregating State = "aggregating"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// EventType represents the type of progress event.
type EventType string

// EventType constants.
const (
	EventLoadStart      EventType = "load_start"
	EventLoadComplete   EventType = "load_complete"
	EventSampleComplete EventType = "sample_complete"
	EventAggregateStart EventType = "aggregate_start"
	EventRunComplete    EventType = "run_complete"
	EventRunFailed      EventType = "run_failed"
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	EventType    EventType
	SampleIndex  int
	TotalSamples int
	Err          error
}

// ProgressListener receives progress updates.
type ProgressListener func(event ProgressEvent)

// ClientFactory builds the inference client for a run.
type ClientFactory func(cfg config.EndpointConfig) Inferrer

// Runner orchestrates one fairness evaluation.
type Runner struct {
	cfg       *config.Config
	newClient ClientFactory

	mu        sync.Mutex
	state     State
	listeners []ProgressListener
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClientFactory overrides how the inference client is constructed.
func WithClientFactory(f ClientFactory) RunnerOption {
	return func(r *Runner) {
		r.newClient = f
	}
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:   cfg,
		state: StateIdle,
		newClient: func(ec config.EndpointConfig) Inferrer {
			return inference.NewClient(ec)
		},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, listener)
}

// State returns the runner's current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Run executes the evaluation. Requests are issued strictly in dataset row
// order, one at a time; the first failure aborts the run, propagating the
// original error with no partial report. The inference client is released
// on every exit path.
func (r *Runner) Run(ctx context.Context) (*models.EvaluationReport, error) {
	r.setState(StateLoading)
	r.notify(ProgressEvent{EventType: EventLoadStart})

	table, err := dataset.Load(r.cfg.Dataset.Path)
	if err != nil {
		return nil, r.fail(err)
	}
	cols, err := dataset.Extract(table,
		r.cfg.Dataset.FeaturesColumn,
		r.cfg.Dataset.LabelsColumn,
		r.cfg.Dataset.SensitiveColumn,
	)
	if err != nil {
		return nil, r.fail(err)
	}
	total := len(cols.Features)
	r.notify(ProgressEvent{EventType: EventLoadComplete, TotalSamples: total})

	r.setState(StateInferring)
	client := r.newClient(r.cfg.Endpoint)
	defer client.Close()

	predictions := make([]int, 0, total)
	for i, sample := range cols.Features {
		label, err := client.Infer(ctx, sample)
		if err != nil {
			return nil, r.fail(err)
		}
		predictions = append(predictions, label)
		r.notify(ProgressEvent{EventType: EventSampleComplete, SampleIndex: i, TotalSamples: total})
	}

	r.setState(StateAggregating)
	r.notify(ProgressEvent{EventType: EventAggregateStart, TotalSamples: total})

	dpDiff := metrics.DemographicParityDifference(predictions, cols.Sensitive)
	eoDiff := metrics.EqualOpportunityDifference(cols.Labels, predictions, cols.Sensitive)

	report := &models.EvaluationReport{
		Timestamp:        time.Now().UTC(),
		EndpointURL:      r.cfg.Endpoint.URL,
		TotalPredictions: total,
		Accuracy:         metrics.Accuracy(cols.Labels, predictions),
		FairnessMetrics: models.FairnessMetrics{
			DemographicParityDifference: dpDiff,
			EqualOpportunityDifference:  eoDiff,
		},
		Thresholds: models.Thresholds{
			DemographicParity: r.cfg.Fairness.DemographicParityThreshold,
			EqualOpportunity:  r.cfg.Fairness.EqualOpportunityThreshold,
		},
		ThresholdsMet: models.ThresholdsMet{
			DemographicParity: dpDiff <= r.cfg.Fairness.DemographicParityThreshold,
			EqualOpportunity:  eoDiff <= r.cfg.Fairness.EqualOpportunityThreshold,
		},
		GroupSelectionRates: metrics.SelectionRates(predictions, cols.Sensitive),
	}

	r.setState(StateDone)
	r.notify(ProgressEvent{EventType: EventRunComplete, TotalSamples: total})
	return report, nil
}

// fail moves the runner to the Failed state and returns err unchanged.
func (r *Runner) fail(err error) error {
	r.setState(StateFailed)
	r.notify(ProgressEvent{EventType: EventRunFailed, Err: err})
	return err
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *Runner) notify(event ProgressEvent) {
	r.mu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}
