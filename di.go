package localeconfig

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that resolves a locale configuration and
// provides the resulting *Config under the given name tag. Resolution runs
// during dependency construction, so a broken configuration directory fails
// application start rather than first use.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, identity []string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Config, error) {
					cfg, err := New(identity, opts...)
					if err != nil {
						return nil, fmt.Errorf("resolving %s configuration: %w", name, err)
					}

					if _, err := cfg.Merged(); err != nil {
						return nil, fmt.Errorf("resolving %s configuration: %w", name, err)
					}

					return cfg, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}
