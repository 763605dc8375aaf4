package robolang

import (
	"github.com/gpoesia/loopye-sub000/analysis"
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/parser"
	"github.com/gpoesia/loopye-sub000/vm"
	"github.com/rs/zerolog"
)

// Option configures compilation and execution of Robolang programs.
type Option func(*config)

type config struct {
	locale         errors.Locale
	maxTripCount   int
	maxDepth       int
	logger         *zerolog.Logger
	observer       vm.Observer
	maxTransitions *int
	maxActions     int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		locale:       errors.DefaultLocale,
		maxTripCount: analysis.DefaultMaxTripCount,
		maxDepth:     parser.DefaultMaxDepth,
		maxActions:   vm.DefaultMaxActions,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (cfg *config) parserOpts() []parser.Option {
	return []parser.Option{
		parser.WithLocale(cfg.locale),
		parser.WithMaxDepth(cfg.maxDepth),
	}
}

func (cfg *config) validators() []analysis.Validator {
	return []analysis.Validator{
		&analysis.TripCountValidator{Max: cfg.maxTripCount, Locale: cfg.locale},
	}
}

func (cfg *config) vmOpts() []vm.Option {
	opts := []vm.Option{
		vm.WithLocale(cfg.locale),
		vm.WithMaxActions(cfg.maxActions),
	}
	if cfg.maxTransitions != nil {
		opts = append(opts, vm.WithMaxTransitions(*cfg.maxTransitions))
	}
	if cfg.logger != nil {
		opts = append(opts, vm.WithLogger(*cfg.logger))
	}
	if cfg.observer != nil {
		opts = append(opts, vm.WithObserver(cfg.observer))
	}
	return opts
}

// WithLocale sets the language of compile and runtime error messages.
func WithLocale(locale errors.Locale) Option {
	return func(cfg *config) {
		cfg.locale = locale
	}
}

// WithMaxTripCount sets the largest trip count a loop may have. Programs with
// longer loops fail to compile.
func WithMaxTripCount(n int) Option {
	return func(cfg *config) {
		cfg.maxTripCount = n
	}
}

// WithMaxDepth sets the maximum block nesting depth accepted by the parser.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		cfg.maxDepth = depth
	}
}

// WithLogger sets the logger interpreters use for execution tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = &logger
	}
}

// WithObserver sets an observer notified of every interpreter transition.
func WithObserver(observer vm.Observer) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}

// WithMaxTransitions bounds the work done by one RunUntilNextAction call.
// See vm.WithMaxTransitions for the default.
func WithMaxTransitions(n int) Option {
	return func(cfg *config) {
		cfg.maxTransitions = &n
	}
}

// WithMaxActions bounds the number of actions Run collects.
func WithMaxActions(n int) Option {
	return func(cfg *config) {
		cfg.maxActions = n
	}
}
