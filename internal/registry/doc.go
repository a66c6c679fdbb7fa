// Package registry offers a lightweight, generic, concurrency-safe name
// registry guarded by a sync.RWMutex.  Unlike a plain map it preserves the
// order names were first registered in, so tool listings stay stable.
package registry
