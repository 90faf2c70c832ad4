package http

import (
	"context"
	"time"

	"flightpulse/internal/otp"
	"flightpulse/internal/services"
)

// AnalyticsServiceInterface defines the analytics operations the handlers
// depend on. Declared here so handlers can be tested against a stub.
type AnalyticsServiceInterface interface {
	FlightCount() int
	LoadedAt() time.Time
	Overview(ctx context.Context, q services.Query) (otp.OverviewCounts, error)
	DelayMetrics(ctx context.Context, q services.Query) ([]otp.DelayMetricRow, error)
	Cancellations(ctx context.Context, q services.Query) ([]otp.AirportCancellations, error)
	Distribution(ctx context.Context, q services.Query) ([]otp.DistributionRow, error)
	RelativeDelay(ctx context.Context, q services.Query) ([]otp.AirportDelayIndex, error)
	TopRoutes(ctx context.Context, q services.Query) (otp.RouteRanking, error)
	HourlyDelays(ctx context.Context, q services.Query) ([]otp.HourlyDelayRow, []otp.HourlyTotalRow, error)
	WeekdayVolume(ctx context.Context, q services.Query) ([]otp.WeekdayCount, error)
	Arrivals(ctx context.Context, q services.Query) ([]otp.ArrivalPoint, error)
	Summarize(ctx context.Context, q services.Query) (*otp.Summary, error)
}
