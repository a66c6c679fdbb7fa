// Package dashboard serves a static dashboard directory over a loopback
// HTTP endpoint tied to the tool server lifecycle.
package dashboard
