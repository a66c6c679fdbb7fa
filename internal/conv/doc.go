// Package conv provides small, reflection-based helpers to convert between
// arbitrary Go values.  The primary helper Convert performs a best-effort
// JSON marshal/unmarshal round-trip which is sufficient for coercing tool
// call arguments into their typed input structs.
package conv
