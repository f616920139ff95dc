package traversal

// Engine drives a program (an ordered chain of Step values, source step
// first) to completion via a single program counter, pulling leftward
// when a step has nothing ready and advancing rightward whenever one
// produces a token.
type Engine struct {
	program  []Step
	observer Observer
}

// NewEngine builds an Engine over program. program must be non-empty;
// an empty program is a caller error (the Builder never constructs one,
// since it always seeds a VertexSource first).
func NewEngine(program []Step, opts ...EngineOption) *Engine {
	e := &Engine{program: program, observer: noopObserver{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates the program to completion and returns every Gremlin that
// fell off the downstream end of the chain, in emission order. Run is
// synchronous: it does not return until the program is exhausted (the
// only bounding mechanism is a Take step within the program itself).
//
// pc starts at the last step index, matching the reference engine this
// protocol is grounded on: evaluation begins at the downstream-most step
// and walks leftward on Pull until a source step produces a token, then
// walks rightward as each stage accepts it.
func (e *Engine) Run() []Gremlin {
	max := len(e.program) - 1
	run := e.observer.RunStarted(len(e.program))

	var current Signal
	results := make([]Gremlin, 0)
	done := -1
	pc := max

	for done < max {
		step := e.program[pc]

		var upstream *Gremlin
		if current.Kind == SignalGremlin {
			upstream = current.Gremlin
		}
		current = step.Step(upstream)
		e.observer.StepVisited(run, pc, current)

		if current.Kind == SignalPull {
			current = FalseSignal()
			if pc-1 > done {
				pc--
				continue
			}
			done = pc
		}

		if current.Kind == SignalDone {
			current = FalseSignal()
			done = pc
		}

		pc++

		if pc > max {
			if current.Kind == SignalGremlin {
				results = append(results, *current.Gremlin)
			}
			current = FalseSignal()
			pc--
		}
	}

	e.observer.RunFinished(run, len(results))
	return results
}
