package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"flightpulse/internal/config"
	"flightpulse/internal/infrastructure"
	"flightpulse/internal/otp"
	"flightpulse/internal/region"
)

// Query selects the slice of the flight table an analytics question runs
// over. Zero values fall back to the configured defaults.
type Query struct {
	From         time.Time
	To           time.Time
	Airline      string
	GroupBy      []otp.Dimension
	Destinations []string
	Dimension    otp.Dimension
	Region       string
	Domestic     bool
}

// AnalyticsService answers analytics questions over a loaded flight table.
// The table is immutable after construction, so methods are safe for
// concurrent use.
type AnalyticsService struct {
	cfg      *config.Config
	logger   *slog.Logger
	table    otp.Table
	classify otp.ClassifyFunc
	loadedAt time.Time
	source   string
}

// NewAnalyticsService loads the configured flights CSV and builds the
// service around it.
func NewAnalyticsService(cfg *config.Config, logger *slog.Logger) (*AnalyticsService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table, err := otp.LoadCSV(cfg.Analytics.FlightsCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight data: %w", err)
	}

	logger.Info("AnalyticsService initialized",
		slog.String("source", cfg.Analytics.FlightsCSV),
		slog.Int("flights", len(table)))

	svc := NewAnalyticsServiceFromTable(cfg, logger, table)
	svc.source = cfg.Analytics.FlightsCSV
	return svc, nil
}

// NewAnalyticsServiceFromTable builds the service around an already loaded
// table.
func NewAnalyticsServiceFromTable(cfg *config.Config, logger *slog.Logger, table otp.Table) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		cfg:      cfg,
		logger:   logger,
		table:    table,
		classify: region.Classify,
		loadedAt: time.Now(),
	}
}

// FlightCount returns the number of loaded flight records.
func (s *AnalyticsService) FlightCount() int {
	return len(s.table)
}

// LoadedAt returns when the flight table was loaded.
func (s *AnalyticsService) LoadedAt() time.Time {
	return s.loadedAt
}

// normalize fills query defaults from configuration.
func (s *AnalyticsService) normalize(q Query) Query {
	if q.Airline == "" {
		q.Airline = s.cfg.Analytics.DefaultAirline
	}
	if len(q.GroupBy) == 0 {
		q.GroupBy = []otp.Dimension{otp.DimAirline}
	}
	if q.Dimension == "" {
		q.Dimension = otp.DimAirline
	}
	if q.Region == "" {
		q.Region = otp.RegionWorld
	}
	if q.From.IsZero() && s.cfg.Analytics.DateFrom != "" {
		q.From, _ = time.Parse("2006-01-02", s.cfg.Analytics.DateFrom)
	}
	if q.To.IsZero() && s.cfg.Analytics.DateTo != "" {
		q.To, _ = time.Parse("2006-01-02", s.cfg.Analytics.DateTo)
	}
	return q
}

// window returns the rows inside the query's date range. A query without
// dates sees the whole table.
func (s *AnalyticsService) window(q Query) otp.Table {
	if q.From.IsZero() && q.To.IsZero() {
		return s.table
	}
	from, to := q.From, q.To
	if from.IsZero() {
		from = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return otp.SelectDateRange(s.table, from, to)
}

// observe starts a query timer. The returned func records the query
// counters and duration histogram when metrics ride on the context.
func (s *AnalyticsService) observe(ctx context.Context, table string) func(error) {
	start := time.Now()
	return func(err error) {
		infrastructure.RecordQueryMetrics(ctx, infrastructure.AppMetricsFromContext(ctx), table, time.Since(start), err)
	}
}

// Overview returns total, cancelled and diverted flight counts.
func (s *AnalyticsService) Overview(ctx context.Context, q Query) (otp.OverviewCounts, error) {
	done := s.observe(ctx, "overview")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing overview", slog.String("airline", q.Airline))
	counts := otp.Overview(s.window(q), q.Airline)
	done(nil)
	return counts, nil
}

// DelayMetrics returns per-group on-time and delay percentages.
func (s *AnalyticsService) DelayMetrics(ctx context.Context, q Query) (rows []otp.DelayMetricRow, err error) {
	done := s.observe(ctx, "delay_metrics")
	defer func() { done(err) }()

	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing delay metrics",
		slog.String("airline", q.Airline),
		slog.Int("dimensions", len(q.GroupBy)))
	rows, err = otp.DelayMetrics(s.window(q), q.GroupBy, q.Destinations)
	return rows, err
}

// Cancellations returns cancelled flight counts per departure airport.
func (s *AnalyticsService) Cancellations(ctx context.Context, q Query) ([]otp.AirportCancellations, error) {
	done := s.observe(ctx, "cancellations")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing cancellations", slog.String("airline", q.Airline))
	rows := otp.CancellationsByAirport(s.window(q), q.Airline)
	done(nil)
	return rows, nil
}

// Distribution returns per-group delay bin fractions.
func (s *AnalyticsService) Distribution(ctx context.Context, q Query) (rows []otp.DistributionRow, err error) {
	done := s.observe(ctx, "delay_distribution")
	defer func() { done(err) }()

	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing delay distribution",
		slog.String("airline", q.Airline),
		slog.String("dimension", string(q.Dimension)))
	rows, err = otp.DelayDistribution(s.window(q), q.Dimension, q.Airline)
	return rows, err
}

// RelativeDelay returns per-airport mean delays relative to the network mean.
func (s *AnalyticsService) RelativeDelay(ctx context.Context, q Query) ([]otp.AirportDelayIndex, error) {
	done := s.observe(ctx, "relative_delay")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing relative delay", slog.String("airline", q.Airline))
	rows := otp.RelativeDelay(s.window(q), q.Airline)
	done(nil)
	return rows, nil
}

// TopRoutes returns the most materially delayed routes in the requested
// scope.
func (s *AnalyticsService) TopRoutes(ctx context.Context, q Query) (otp.RouteRanking, error) {
	done := s.observe(ctx, "top_routes")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing top delayed routes",
		slog.String("airline", q.Airline),
		slog.Bool("domestic", q.Domestic))
	ranking := otp.TopDelayedRoutes(s.window(q), q.Airline, q.Domestic)
	done(nil)
	return ranking, nil
}

// HourlyDelays returns delayed flight counts and traffic totals per
// scheduled departure hour.
func (s *AnalyticsService) HourlyDelays(ctx context.Context, q Query) ([]otp.HourlyDelayRow, []otp.HourlyTotalRow, error) {
	done := s.observe(ctx, "hourly_delays")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing hourly delay pattern", slog.String("airline", q.Airline))
	delayed, totals := otp.HourlyDelayPattern(s.window(q), q.Airline)
	done(nil)
	return delayed, totals, nil
}

// WeekdayVolume returns flight counts per weekday for the query's region.
func (s *AnalyticsService) WeekdayVolume(ctx context.Context, q Query) (rows []otp.WeekdayCount, err error) {
	done := s.observe(ctx, "weekday_volume")
	defer func() { done(err) }()

	q = s.normalize(q)
	if !region.IsSelector(q.Region) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, q.Region)
	}
	s.logger.InfoContext(ctx, "computing weekday volume",
		slog.String("airline", q.Airline),
		slog.String("region", q.Region))
	rows, err = otp.WeekdayVolume(s.window(q), q.Airline, q.Region, s.classify)
	return rows, err
}

// Arrivals returns arrival volume and mean delay per destination airport.
func (s *AnalyticsService) Arrivals(ctx context.Context, q Query) ([]otp.ArrivalPoint, error) {
	done := s.observe(ctx, "arrivals")
	q = s.normalize(q)
	s.logger.InfoContext(ctx, "computing arrival distribution", slog.String("airline", q.Airline))
	rows := otp.ArrivalDistribution(s.window(q), q.Airline)
	done(nil)
	return rows, nil
}

// Summarize computes every aggregate view in parallel and bundles them.
func (s *AnalyticsService) Summarize(ctx context.Context, q Query) (sum *otp.Summary, err error) {
	done := s.observe(ctx, "summary")
	defer func() { done(err) }()

	q = s.normalize(q)
	if !region.IsSelector(q.Region) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, q.Region)
	}

	start := time.Now()
	t := s.window(q)
	sum = &otp.Summary{
		Airline: q.Airline,
		From:    q.From,
		To:      q.To,
		GroupBy: q.GroupBy,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum.Overview = otp.Overview(t, q.Airline)
		return nil
	})
	g.Go(func() error {
		rows, err := otp.DelayMetrics(t, q.GroupBy, q.Destinations)
		sum.DelayMetrics = rows
		return err
	})
	g.Go(func() error {
		sum.Cancellations = otp.CancellationsByAirport(t, q.Airline)
		return nil
	})
	g.Go(func() error {
		rows, err := otp.DelayDistribution(t, q.Dimension, q.Airline)
		sum.Distribution = rows
		return err
	})
	g.Go(func() error {
		sum.RelativeDelay = otp.RelativeDelay(t, q.Airline)
		return nil
	})
	g.Go(func() error {
		sum.DomesticRoutes = otp.TopDelayedRoutes(t, q.Airline, true)
		return nil
	})
	g.Go(func() error {
		sum.InternationalRoutes = otp.TopDelayedRoutes(t, q.Airline, false)
		return nil
	})
	g.Go(func() error {
		sum.HourlyDelays, sum.HourlyTotals = otp.HourlyDelayPattern(t, q.Airline)
		return nil
	})
	g.Go(func() error {
		rows, err := otp.WeekdayVolume(t, q.Airline, q.Region, s.classify)
		sum.WeekdayVolume = rows
		return err
	})
	g.Go(func() error {
		sum.Arrivals = otp.ArrivalDistribution(t, q.Airline)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to summarize: %w", err)
	}

	s.logger.InfoContext(ctx, "summary computed",
		slog.String("airline", q.Airline),
		slog.Int("flights", len(t)),
		slog.Duration("elapsed", time.Since(start)))
	return sum, nil
}
