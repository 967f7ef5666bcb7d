package resolve

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/classcond/lang"
	"github.com/ardnew/classcond/log"
)

// Outcome is the evaluation of one conditional class.
type Outcome struct {
	lang.ConditionalClass

	// Applies reports whether the condition held. It is false when Err is set.
	Applies bool  `json:"applies" yaml:"applies"`
	Err     error `json:"-"       yaml:"-"`
}

// Result holds the outcome of every conditional class, in input order.
type Result struct {
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Classes returns the distinct class names whose conditions held, in order
// of first appearance.
func (r Result) Classes() []string {
	var names []string

	for _, o := range r.Outcomes {
		if !o.Applies {
			continue
		}

		for _, name := range o.Names() {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}

	return names
}

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithLogger sets the logger used to report conditions that fail.
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// Evaluator compiles and evaluates conditions. Compiled programs are cached,
// so an Evaluator should be reused across calls. It is safe for concurrent
// use.
type Evaluator struct {
	logger log.Logger

	mu       sync.Mutex
	programs map[string]*vm.Program
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{programs: map[string]*vm.Program{}}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate evaluates classes against env using a new [Evaluator].
func Evaluate(classes []lang.ConditionalClass, env Env) (Result, error) {
	return New().Evaluate(context.Background(), classes, env)
}

// Evaluate decides which of classes apply under env. Unconditional classes
// always apply.
//
// A condition that fails to compile or run does not apply. Its error is kept
// in the corresponding [Outcome], and all such errors are joined into the
// returned error alongside a complete Result.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	classes []lang.ConditionalClass,
	env Env,
) (Result, error) {
	if env == nil {
		env = Env{}
	}

	res := Result{Outcomes: make([]Outcome, 0, len(classes))}

	var errs []error

	for _, c := range classes {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		o := Outcome{ConditionalClass: c}

		if c.Unconditional() {
			o.Applies = true
		} else {
			o.Applies, o.Err = e.test(c.Condition, env)
		}

		if o.Err != nil {
			e.logger.DebugContext(ctx, "condition failed",
				slog.String("classes", c.Classes),
				slog.Any("error", o.Err))

			errs = append(errs, o.Err)
		}

		res.Outcomes = append(res.Outcomes, o)
	}

	return res, errors.Join(errs...)
}

// Test reports whether cond holds under env.
func (e *Evaluator) Test(cond string, env Env) (bool, error) {
	if env == nil {
		env = Env{}
	}

	return e.test(cond, env)
}

func (e *Evaluator) test(cond string, env Env) (bool, error) {
	program, err := e.compile(cond)
	if err != nil {
		return false, err
	}

	out, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return false, ErrEvaluate.Wrap(err).With(slog.String("condition", cond))
	}

	return truthy(out), nil
}

func (e *Evaluator) compile(cond string) (*vm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.programs[cond]; ok {
		return p, nil
	}

	program, err := expr.Compile(translate(cond),
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.Function(truthyFunc, func(params ...any) (any, error) {
			return truthy(params[0]), nil
		}, new(func(any) bool)),
		expr.Patch(jsPatcher{}),
	)
	if err != nil {
		return nil, ErrCompile.Wrap(err).With(slog.String("condition", cond))
	}

	e.programs[cond] = program

	return program, nil
}
