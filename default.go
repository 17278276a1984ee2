package insist

import (
	"os"
	"sync/atomic"

	"github.com/aretw0/insist/internal/config"
	"github.com/aretw0/insist/pkg/types"
)

var defaultChecker atomic.Pointer[Checker]

func init() {
	defaultChecker.Store(New(WithDisabled(config.DisabledFromEnv(os.Getenv))))
}

// Default returns the process wide Checker used by the package level
// functions. It is seeded from the environment: checks are off when
// INSIST_DISABLED=true, or when NODE_ENV=production and INSIST_IN_PROD is not
// "true".
func Default() *Checker {
	return defaultChecker.Load()
}

// SetDefault replaces the process wide Checker.
func SetDefault(c *Checker) {
	defaultChecker.Store(c)
}

// Configure applies cfg to the process wide Checker, keeping its logger and
// hooks. Checks already running keep the Checker they started with.
func Configure(cfg Config) {
	prev := Default()
	SetDefault(New(WithConfig(cfg), WithLogger(prev.logger), WithHooks(prev.hooks)))
}

// Args validates and shifts received with the default Checker.
func Args(received []any, expected ...types.Type) ([]any, error) {
	return Default().Args(received, expected...)
}

// OfType checks v against t with the default Checker.
func OfType(v any, t types.Type) error {
	return Default().OfType(v, t)
}

// IsType checks that t is a valid descriptor with the default Checker.
func IsType(t types.Type) error {
	return Default().IsType(t)
}

// Descriptor builders.

// ArrayOf accepts a sequence whose elements all satisfy t.
func ArrayOf(t types.Type) types.Type { return types.ArrayOf(t) }

// Nullable accepts t or null.
func Nullable(t types.Type) types.Type { return types.Nullable(t) }

// Optional accepts t, undefined or null and makes the slot omittable.
func Optional(t types.Type) types.Type { return types.Optional(t) }

// Anything accepts any primitive class or null.
func Anything() types.Type { return types.Anything() }

// Enum accepts any of the mapping's values.
func Enum(values map[string]any) types.Type { return types.Enum(values) }

// Type returns the Any wildcard.
func Type() types.Type { return types.Any() }
