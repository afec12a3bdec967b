// Package service contains application use cases that sit between the
// delivery layers (HTTP handlers, webhooks, CLI) and the stores in
// internal/store.
//
// Services receive their dependencies through constructor injection and
// depend only on store interfaces, never on a concrete database package.
// Expected failure conditions are returned as sentinel errors that callers
// match with errors.Is; unexpected ones are wrapped with context.
//
// Subpackages:
//   - srs: SRS document generation
//   - auth: Clerk session token verification
package service
