// Package core provides the business logic for dataset analysis.
//
// This package is the heart of the analytics API, containing all domain
// logic independent of any UI or transport layer. It can be used by web
// handlers, CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Table: an immutable, column-oriented materialization of one
//     uploaded spreadsheet, built by [ParseCSV] or [ParseExcel].
//   - Type inference: [InferColumnTypes] classifies each column as
//     date, number, category, or text from a bounded sample.
//   - Builders: [Summarize], [BuildCharts], and [BuildPreview] each
//     derive one artifact from the table and the type map. They are
//     independent and read-only.
//   - Orchestration: [Analyze] runs inference and all builders in one
//     pass.
//   - Storage: [Store] caches the resulting [Bundle] per dataset ID for
//     the lifetime of the process.
//
// # Error Philosophy
//
// Inside the analysis, a cell that fails to parse as the attempted type
// is skipped, never fatal. Builders that find no qualifying input (no
// date columns, no category values) produce an absent artifact, which
// is an expected outcome. The only hard errors are table construction
// violations (duplicate column names, ragged columns), raised by
// [NewTable] before analysis ever starts, and the service-level
// sentinels in service.go.
package core
