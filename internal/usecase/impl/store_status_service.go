package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bakery/config"
	"bakery/internal/domain/entity"
	"bakery/internal/domain/schedule"
	"bakery/internal/domain/service"
	"bakery/internal/errors"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

const defaultStatusPollInterval = time.Minute

type StoreStatusServiceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// storeStatusService keeps the last evaluated StoreStatus and re-evaluates it
// on a ticker while the app runs.
type storeStatusService struct {
	settings schedule.Settings
	clock    service.Clock
	interval time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	status entity.StoreStatus
	known  bool
}

// NewStoreStatusService evaluates once immediately so CurrentStatus is valid
// before the ticker starts.
func NewStoreStatusService(params StoreStatusServiceParams) usecase.StoreStatusUsecase {
	settings, err := SettingsFromConfig(params.Config.Schedule)
	if err != nil {
		params.Logger.Error("Invalid schedule configuration, store will report closed", slog.Any("error", err))
		settings = schedule.FailClosed()
	}

	interval := defaultStatusPollInterval
	if params.Config.Schedule != nil && params.Config.Schedule.PollInterval > 0 {
		interval = params.Config.Schedule.PollInterval
	}

	srv := &storeStatusService{
		settings: settings,
		clock:    params.Clock,
		interval: interval,
		logger:   params.Logger,
	}
	srv.Refresh(context.Background())

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				srv.run(runCtx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return errors.WithStack(stopCtx.Err())
			}
		},
	})

	return srv
}

func (srv *storeStatusService) CurrentStatus(_ context.Context) entity.StoreStatus {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.status
}

func (srv *storeStatusService) Refresh(ctx context.Context) entity.StoreStatus {
	next := schedule.Evaluate(srv.clock.Now(), srv.settings)

	srv.mu.Lock()
	previous, known := srv.status, srv.known
	srv.status, srv.known = next, true
	srv.mu.Unlock()

	if !known || previous.IsOpen != next.IsOpen {
		srv.logTransition(ctx, next)
	}

	return next
}

func (srv *storeStatusService) run(ctx context.Context) {
	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.Refresh(ctx)
		}
	}
}

func (srv *storeStatusService) logTransition(ctx context.Context, status entity.StoreStatus) {
	if status.IsOpen {
		srv.logger.InfoContext(ctx, "Store is open", slog.Time("evaluated_at", status.EvaluatedAt))

		return
	}

	attrs := []slog.Attr{slog.Time("evaluated_at", status.EvaluatedAt)}
	if status.ClosedMessage != nil {
		attrs = append(attrs, slog.String("message", *status.ClosedMessage))
	}
	if status.NextOpeningAt != nil {
		attrs = append(attrs, slog.Time("next_opening_at", *status.NextOpeningAt))
	}
	srv.logger.LogAttrs(ctx, slog.LevelInfo, "Store is closed", attrs...)
}

// SettingsFromConfig turns the schedule section into evaluation settings.
// A nil section yields the default week in Europe/Madrid.
func SettingsFromConfig(cfg *config.ScheduleConfig) (schedule.Settings, error) {
	if cfg == nil {
		cfg = &config.ScheduleConfig{}
	}

	tz := strings.TrimSpace(cfg.Timezone)
	if tz == "" {
		tz = "Europe/Madrid"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return schedule.Settings{}, errors.Wrapf(err, "unknown timezone %q", tz)
	}

	days := make(map[string]schedule.DayHours, len(cfg.Week))
	for name, hours := range cfg.Week {
		days[name] = schedule.DayHours{Open: hours.Open, Close: hours.Close, Closed: hours.Closed}
	}
	week, err := schedule.ParseWeek(days)
	if err != nil {
		return schedule.Settings{}, err
	}

	settings := schedule.Settings{
		Location:      loc,
		Week:          week,
		ForceClosed:   cfg.ForceClosed,
		ClosedMessage: strings.TrimSpace(cfg.ClosedMessage),
	}

	return settings, settings.Validate()
}
