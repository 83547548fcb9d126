// Package domain contains the core business entities and rules for the
// docflow client: documents and their processing lifecycle, status
// transitions, approval records with derived priority, integration
// configurations and audit logs, and the shared read-cache keys.
//
// Domain types carry no infrastructure concerns. Status transitions are
// detected by pure functions so the state machine can be tested without
// a rendering or notification runtime.
package domain
