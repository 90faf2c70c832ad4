// Package exporter writes on-time-performance summaries to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// SummaryExporter: Writes each aggregate table of an otp.Summary to its
// well-known CSV report file.
//
// WorkbookExporter: Writes a single XLSX workbook with one sheet per
// aggregate table.
//
// Example usage:
//
//	summaryExporter := exporter.NewSummaryExporter(paths)
//	if err := summaryExporter.ExportAll(summary); err != nil { ... }
//
//	workbookExporter := exporter.NewWorkbookExporter(paths)
//	if err := workbookExporter.Export(summary, paths.SummaryWorkbook); err != nil { ... }
package exporter
