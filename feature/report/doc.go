// Package report turns finished integration runs into durable artifacts.
//
// The pipeline core only depends on the Sink interface: it hands over a
// finalized RunReport and moves on. Sinks must never lose a report the
// pipeline already computed; a sink failure is surfaced to the run's caller
// as a secondary error, after the run itself is complete.
//
// # Sinks
//
//   - FileSink: writes a structured JSON artifact and a human-readable text
//     rendition to the reports directory, and emits one summary log line.
//     It also serves the listing of recent reports.
//   - S3Sink: archives the JSON artifact to an object storage bucket.
//   - MultiSink: fans a report out to several sinks in order.
//
// # HTTP Endpoints
//
//   - GET /reports : Lists the most recent report artifacts.
package report
