// Package tool defines the canonical naming scheme for the tools this server
// exposes.  Every registered tool carries the "viking_" prefix; Canonical maps
// the spellings clients commonly use back to the registered name.
package tool
