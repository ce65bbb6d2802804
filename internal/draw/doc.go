// Package draw defines the domain model for daily numbers game results: slots,
// games, per-attempt extraction results, per-slot pairs, and the daily report
// returned to callers.
package draw
