// Package jobs contains the scheduled background work of the shipping
// service. Jobs run on cron schedules and drive the same command handlers
// the HTTP API uses, so background and interactive mutations share one code
// path and one concurrency discipline.
package jobs
