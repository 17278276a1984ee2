package insist

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/insist/internal/logging"
	"github.com/aretw0/insist/pkg/args"
	"github.com/aretw0/insist/pkg/types"
)

// Version is the release of the insist module.
const Version = "0.3.0"

// Config holds the settings captured by a Checker.
type Config struct {
	// Disabled turns OfType and IsType into no-ops. Args always runs because
	// callers depend on the shifted result.
	Disabled bool `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
}

// Checker validates arguments and values. It is immutable once built and safe
// for concurrent use.
type Checker struct {
	cfg    Config
	logger *slog.Logger
	hooks  Hooks
}

// Option defines a functional option for configuring a Checker.
type Option func(*Checker)

// WithConfig sets the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Checker) {
		c.cfg = cfg
	}
}

// WithDisabled toggles the Disabled setting.
func WithDisabled(disabled bool) Option {
	return func(c *Checker) {
		c.cfg.Disabled = disabled
	}
}

// WithLogger sets a custom structured logger. Failures are logged at Debug.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(c *Checker) {
		c.hooks = hooks
	}
}

// New builds a Checker. Without options checks are enabled.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

// Config returns the configuration captured at construction.
func (c *Checker) Config() Config {
	return c.cfg
}

// Args validates received against the declared types and returns the values
// shifted into their slots. Omitted optional slots are nil.
func (c *Checker) Args(received []any, expected ...types.Type) ([]any, error) {
	start := time.Now()
	out, err := args.Shift(received, expected...)
	c.observe(OpArgs, start, err)
	return out, err
}

// OfType returns an error unless v satisfies t. It returns nil when the
// Checker is disabled.
func (c *Checker) OfType(v any, t types.Type) error {
	if c.cfg.Disabled {
		return nil
	}
	start := time.Now()
	err := ofType(v, t)
	c.observe(OpOfType, start, err)
	return err
}

// IsType returns an error unless t is a valid descriptor. It returns nil
// when the Checker is disabled.
func (c *Checker) IsType(t types.Type) error {
	if c.cfg.Disabled {
		return nil
	}
	start := time.Now()
	var err error
	if !types.IsValid(t) {
		err = &TypeError{Type: types.Name(t), Invalid: true}
	}
	c.observe(OpIsType, start, err)
	return err
}

// MustArgs is Args but panics on failure.
func (c *Checker) MustArgs(received []any, expected ...types.Type) []any {
	out, err := c.Args(received, expected...)
	if err != nil {
		panic(err)
	}
	return out
}

// MustOfType is OfType but panics on failure.
func (c *Checker) MustOfType(v any, t types.Type) {
	if err := c.OfType(v, t); err != nil {
		panic(err)
	}
}

// MustIsType is IsType but panics on failure.
func (c *Checker) MustIsType(t types.Type) {
	if err := c.IsType(t); err != nil {
		panic(err)
	}
}

func ofType(v any, t types.Type) error {
	if !types.IsValid(t) {
		return fmt.Errorf("%w supplied", ErrInvalidType)
	}
	if !types.IsOf(v, t) {
		return &TypeError{Value: types.NameOf(v), Type: types.Name(t)}
	}
	return nil
}

func (c *Checker) observe(op Op, start time.Time, err error) {
	if err != nil {
		c.logger.Debug("check failed", "op", op, "error", err)
	}
	if c.hooks.OnCheck != nil {
		c.hooks.OnCheck(Event{
			Op:       op,
			Err:      err,
			Duration: time.Since(start),
		})
	}
}
