// Package refresh declares the refresh policy fields of a feed section and
// decides whether a configuration change requires the feed to be refreshed.
package refresh

import (
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	feedform "github.com/reoring/feedform"
)

// ChangedPaths lists the value paths of section that differ between a and b,
// ignoring the fields named in excluded. Both snapshots must belong to scope.
// Neither a nor b is modified.
func ChangedPaths(section *feedform.Section, scope feedform.Scope, a, b feedform.Snapshot, excluded []string) ([]feedform.ValuePath, error) {
	if a.Scope() != scope {
		return nil, feedform.ScopeMismatch(scope, a.Scope())
	}
	if b.Scope() != scope {
		return nil, feedform.ScopeMismatch(scope, b.Scope())
	}
	ca, cb := a.Clone(), b.Clone()
	for _, name := range excluded {
		p := section.ValuePath(name)
		ca.Unset(p)
		cb.Unset(p)
	}
	return section.Diff(ca, cb)
}

// NeedsRefresh reports whether the section values differ between a and b once
// the excluded fields are ignored.
func NeedsRefresh(section *feedform.Section, scope feedform.Scope, a, b feedform.Snapshot, excluded []string) (bool, error) {
	changed, err := ChangedPaths(section, scope, a, b, excluded)
	if err != nil {
		return false, err
	}
	return len(changed) > 0, nil
}

// Config is a refreshable configuration section: its own fields plus the
// refresh policy fields.
type Config struct {
	section *feedform.Section
	logger  zerolog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sets the logger used to trace refresh decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// NewConfig declares a refreshable section stored under base. The refresh
// policy fields come first; extra holds the content fields of the section.
func NewConfig(base feedform.ValuePath, extra []*feedform.Field, opts ...Option) (*Config, error) {
	fields := append(BaseFields(), extra...)
	section, err := feedform.NewSection(base, fields...)
	if err != nil {
		return nil, err
	}
	c := &Config{section: section, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Section returns the underlying section.
func (c *Config) Section() *feedform.Section { return c.section }

// IsRefreshNeeded reports whether moving from a to b changes any content
// value. Changes to the refresh policy alone never require a refresh.
func (c *Config) IsRefreshNeeded(scope feedform.Scope, a, b feedform.Snapshot) (bool, error) {
	changed, err := c.ChangedPaths(scope, a, b)
	if err != nil {
		return false, err
	}
	if len(changed) > 0 {
		paths := make([]string, len(changed))
		for i, p := range changed {
			paths[i] = p.String()
		}
		c.logger.Debug().Str("scope", scope.String()).Strs("changed", paths).Msg("refresh needed")
		return true, nil
	}
	c.logger.Debug().Str("scope", scope.String()).Msg("no refresh needed")
	return false, nil
}

// ChangedPaths lists the content value paths that differ between a and b.
func (c *Config) ChangedPaths(scope feedform.Scope, a, b feedform.Snapshot) ([]feedform.ValuePath, error) {
	return ChangedPaths(c.section, scope, a, b, PolicyFieldNames())
}

// ShouldForceProductLoad reports whether products must be loaded one by one
// when refreshing.
func (c *Config) ShouldForceProductLoad(snap feedform.Snapshot) (bool, error) {
	v, err := c.section.FieldValue(snap, KeyForceProductLoadForRefresh)
	if err != nil {
		return false, err
	}
	return cast.ToBool(v), nil
}

// AutomaticRefreshState returns the automatic refresh policy.
func (c *Config) AutomaticRefreshState(snap feedform.Snapshot) (State, error) {
	v, err := c.section.FieldValue(snap, KeyAutomaticRefreshState)
	if err != nil {
		return StateDisabled, err
	}
	return ParseState(v), nil
}

// AutomaticRefreshDelay returns the delay after which data is refreshed
// automatically. Zero means no valid delay is configured; a delay too large
// for a time.Duration is reported as invalid_value.
func (c *Config) AutomaticRefreshDelay(snap feedform.Snapshot) (time.Duration, error) {
	return c.minutes(snap, KeyAutomaticRefreshDelay)
}

// IsAdvisedRefreshRequirementEnabled reports whether an advised refresh
// becomes required after some time.
func (c *Config) IsAdvisedRefreshRequirementEnabled(snap feedform.Snapshot) (bool, error) {
	v, err := c.section.FieldValue(snap, KeyEnableAdvisedRefreshRequirement)
	if err != nil {
		return false, err
	}
	return cast.ToBool(v), nil
}

// AdvisedRefreshRequirementDelay returns the delay after which an advised
// refresh becomes required.
func (c *Config) AdvisedRefreshRequirementDelay(snap feedform.Snapshot) (time.Duration, error) {
	return c.minutes(snap, KeyAdvisedRefreshRequirementDelay)
}

func (c *Config) minutes(snap feedform.Snapshot, name string) (time.Duration, error) {
	v, err := c.section.FieldValue(snap, name)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToInt64E(v)
	if err != nil || n <= 0 {
		return 0, nil
	}
	if n > maxDelayMinutes {
		p := c.section.ValuePath(name)
		return 0, feedform.Issues{feedform.At(p.Pointer()).Issue(feedform.CodeInvalidValue,
			"field", name, "value", strconv.FormatInt(n, 10))}
	}
	return time.Duration(n) * time.Minute, nil
}

// maxDelayMinutes is the largest delay representable as a time.Duration.
const maxDelayMinutes = math.MaxInt64 / int64(time.Minute)
