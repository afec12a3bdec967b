// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a composed prompt
// into a GenerateContent call through the google.golang.org/genai client and
// returns the concatenated text of the first candidate without
// post-processing. Safety-blocked candidates are reported as
// generation.ErrContentBlocked; every other upstream failure is returned
// wrapped so its message reaches the caller.
package gemini
