package traversal

// Step is one pipeline stage. Step is called once per program-counter
// visit with the token the upstream stage produced on its most recent
// successful turn (nil when there is none yet, or the upstream asked to
// yield without producing). A Step must not block; every case must
// return promptly with one of the four Signal kinds.
type Step interface {
	Step(upstream *Gremlin) Signal
}

// RunToken correlates the RunStarted/StepVisited/RunFinished calls that
// belong to the same Engine.Run invocation. Engine passes back whatever
// RunStarted returned; an Observer that does not need correlation (or
// that is never shared across concurrently running Engines) may ignore
// it and return nil.
type RunToken any

// Observer receives ambient instrumentation callbacks from Engine.Run. It
// never influences control flow; StepVisited/RunFinished are advisory
// only. Package telemetry provides an OpenTelemetry/Prometheus-backed
// Observer; the zero value (nil) disables instrumentation entirely.
type Observer interface {
	// RunStarted is called once, before the first step is visited. Its
	// return value is threaded back into StepVisited and RunFinished for
	// this run, so an Observer shared by multiple concurrently running
	// Engines can tell their calls apart.
	RunStarted(programLen int) RunToken
	// StepVisited is called after every Step.Step call, with the
	// zero-based program-counter position visited and the signal it
	// returned.
	StepVisited(run RunToken, pc int, signal Signal)
	// RunFinished is called once, after the engine has produced its
	// final result slice.
	RunFinished(run RunToken, resultCount int)
}

type noopObserver struct{}

func (noopObserver) RunStarted(int) RunToken           { return nil }
func (noopObserver) StepVisited(RunToken, int, Signal) {}
func (noopObserver) RunFinished(RunToken, int)         {}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithEngineObserver attaches an Observer notified of run/step events.
func WithEngineObserver(o Observer) EngineOption {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}
