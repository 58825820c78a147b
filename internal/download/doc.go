// Package download orchestrates download tasks: it validates requests, runs
// each task on its own goroutine against a fetch.Service, turns fetch events
// into progress and log updates for a Sink, and handles cancellation.
package download
