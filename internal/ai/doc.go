// Package ai provides the client boundary to the external AI suggestion
// service: price suggestions, description suggestions, and structured risk
// assessments. It supports multiple providers, with retry logic, rate
// limiting, and response caching. All failures are surfaced as errors the
// engine treats as "no data"; nothing in this package panics on a
// malformed response.
package ai
