// Package charts renders on-time-performance summaries as ECharts HTML.
//
// Each builder turns one aggregate table into a configured chart; Dashboard
// assembles all of them into a single page. Charts render to any io.Writer,
// so the same builders back both the HTTP dashboard and file export.
package charts
