package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"fluxdevs/app/domain"
	"fluxdevs/app/port"
)

// AvailabilityChecker runs debounced company-name availability lookups.
// Each Observe call (re)schedules a delayed check and cancels the previously
// scheduled one, so only the name the user settled on is sent to the server.
// Concurrent lookups for the same name collapse into a single request.
type AvailabilityChecker struct {
	identity  port.IdentityGateway
	logger    *slog.Logger
	debounce  time.Duration
	minLength int

	group singleflight.Group

	mu       sync.Mutex
	timer    *time.Timer
	pending  string // name the scheduled check is for
	checked  string // name the current result applies to
	result   domain.Availability
	onResult func(name string, result domain.Availability)
}

// NewAvailabilityChecker creates a checker with the given settle delay and
// minimum name length. Names shorter than the minimum are never checked.
func NewAvailabilityChecker(identity port.IdentityGateway, logger *slog.Logger, debounce time.Duration, minLength int) *AvailabilityChecker {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if minLength <= 0 {
		minLength = 3
	}
	return &AvailabilityChecker{
		identity:  identity,
		logger:    logger,
		debounce:  debounce,
		minLength: minLength,
	}
}

// OnResult registers a callback invoked whenever a lookup completes. Used by
// the front end to refresh the availability indicator.
func (c *AvailabilityChecker) OnResult(fn func(name string, result domain.Availability)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = fn
}

// Observe records a keystroke's worth of input. It cancels any scheduled but
// not-yet-fired check and schedules a new one after the settle delay.
func (c *AvailabilityChecker) Observe(name, industry string) {
	name = strings.TrimSpace(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = ""
	c.result = domain.AvailabilityChecking
	c.checked = ""

	if len(name) < c.minLength {
		return
	}

	c.pending = name
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fire(name, industry)
	})
}

// CheckNow performs the lookup immediately, bypassing the settle delay. The
// result feeds the same state Observe would.
func (c *AvailabilityChecker) CheckNow(ctx context.Context, name, industry string) (domain.Availability, error) {
	name = strings.TrimSpace(name)
	if len(name) < c.minLength {
		return domain.AvailabilityChecking, domain.NewValidationError("name", "company name is too short")
	}
	result, err := c.lookup(ctx, name, industry)
	if err != nil {
		return domain.AvailabilityChecking, err
	}
	c.record(name, result)
	return result, nil
}

// Result returns the availability of the given name, or Checking when no
// completed lookup applies to it.
func (c *AvailabilityChecker) Result(name string) domain.Availability {
	name = strings.TrimSpace(name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checked != name {
		return domain.AvailabilityChecking
	}
	return c.result
}

// Close cancels any scheduled check.
func (c *AvailabilityChecker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = ""
}

func (c *AvailabilityChecker) fire(name, industry string) {
	c.mu.Lock()
	if c.pending != name {
		// A newer keystroke rescheduled past us.
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	result, err := c.lookup(context.Background(), name, industry)
	if err != nil {
		c.logger.Warn("availability check failed",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return
	}
	c.record(name, result)
}

func (c *AvailabilityChecker) lookup(ctx context.Context, name, industry string) (domain.Availability, error) {
	v, err, _ := c.group.Do(name+"\x00"+industry, func() (any, error) {
		return c.identity.CheckTenantName(ctx, name, industry)
	})
	if err != nil {
		return domain.AvailabilityChecking, err
	}
	return v.(domain.Availability), nil
}

func (c *AvailabilityChecker) record(name string, result domain.Availability) {
	c.mu.Lock()
	// Discard stale results: only the latest observed name may win.
	if c.pending != "" && c.pending != name {
		c.mu.Unlock()
		return
	}
	c.checked = name
	c.result = result
	c.pending = ""
	fn := c.onResult
	c.mu.Unlock()

	if fn != nil {
		fn(name, result)
	}
}
