// Package generation provides the boundary between the application core and
// hosted generative-text APIs. It defines the Generator interface implemented
// by the provider adapters under internal/platform, the error values those
// adapters report, and the prompt templates that turn a feature idea into the
// text sent upstream.
package generation
