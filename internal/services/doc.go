// Package services contains the business logic layer between the HTTP
// transport and the otp aggregation engine.
//
// AnalyticsService owns the loaded flight table and answers every analytics
// question over it; HealthService reports liveness and data freshness. All
// services take a context on their public methods and log through an
// injected *slog.Logger.
package services
