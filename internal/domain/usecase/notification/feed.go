package notification

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// Default ticker timings
const (
	DefaultInitialDelay = 3 * coreport.Second
	DefaultInterval     = 8 * coreport.Second
	DefaultVisible      = 5 * coreport.Second
	maxMinutesAgo       = 5
)

// DefaultNames are the first names shown when none are configured
var DefaultNames = []string{
	"John", "Emily", "Michael", "Sarah", "David", "Lisa", "James", "Emma",
	"Robert", "Sophia", "William", "Olivia", "Daniel", "Ava", "Matthew",
}

// DefaultLocations are the cities shown when none are configured
var DefaultLocations = []string{
	"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Chicago, IL", "Denver, CO", "Miami, FL", "Portland, OR",
	"London, UK", "Toronto, CA", "Sydney, AU", "Berlin, DE", "Paris, FR",
}

// Settings configures the registration ticker
type Settings struct {
	Enabled      bool
	InitialDelay coreport.Duration
	Interval     coreport.Duration
	Visible      coreport.Duration
	Names        []string
	Locations    []string
}

// Feed implements usecase.NotificationUseCase.
// Each Run call has its own timers; the random source is shared and locked.
type Feed struct {
	settings     Settings
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes a Feed
type Option func(*Feed)

// WithRandSource replaces the random source, used by tests for repeatable notices
func WithRandSource(src rand.Source) Option {
	return func(f *Feed) {
		f.rng = rand.New(src)
	}
}

// NewFeed creates a registration ticker; zero timings and empty lists take the defaults
func NewFeed(
	settings Settings,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) usecase.NotificationUseCase {
	if settings.InitialDelay <= 0 {
		settings.InitialDelay = DefaultInitialDelay
	}
	if settings.Interval <= 0 {
		settings.Interval = DefaultInterval
	}
	if settings.Visible <= 0 {
		settings.Visible = DefaultVisible
	}
	if len(settings.Names) == 0 {
		settings.Names = DefaultNames
	}
	if len(settings.Locations) == 0 {
		settings.Locations = DefaultLocations
	}

	f := &Feed{
		settings:     settings,
		timeProvider: timeProvider,
		logger:       logger,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run emits the first notice after the initial delay and then one per interval.
// The interval is measured from the start of Run, not from the first notice.
// A notice is hidden after the visible duration unless a newer notice replaced it first.
func (f *Feed) Run(ctx context.Context, emit usecase.EmitFunc) error {
	if !f.settings.Enabled {
		<-ctx.Done()
		return ctx.Err()
	}

	first := f.timeProvider.After(f.settings.InitialDelay)
	ticker := f.timeProvider.NewTicker(f.settings.Interval)
	defer ticker.Stop()

	var (
		current entity.RegistrationNotice
		hide    <-chan time.Time
	)

	show := func(at time.Time) {
		current = f.nextNotice(at)
		hide = f.timeProvider.After(f.settings.Visible)
		emit(entity.NoticeEvent{Type: entity.NoticeShow, Notice: current, At: at})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-first:
			first = nil
			show(f.timeProvider.Now())
		case <-ticker.C():
			show(f.timeProvider.Now())
		case <-hide:
			hide = nil
			emit(entity.NoticeEvent{Type: entity.NoticeHide, Notice: current, At: f.timeProvider.Now()})
		}
	}
}

func (f *Feed) nextNotice(at time.Time) entity.RegistrationNotice {
	f.mu.Lock()
	defer f.mu.Unlock()

	notice := entity.RegistrationNotice{
		ID:         entity.GenerateID(),
		Name:       f.settings.Names[f.rng.IntN(len(f.settings.Names))],
		Location:   f.settings.Locations[f.rng.IntN(len(f.settings.Locations))],
		MinutesAgo: f.rng.IntN(maxMinutesAgo) + 1,
		CreatedAt:  at,
	}

	f.logger.Debug("Registration notice generated", map[string]any{
		"notice_id": notice.ID,
		"name":      notice.Name,
		"location":  notice.Location,
	})

	return notice
}
