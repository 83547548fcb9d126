// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentAPI: document reads and upload against the processing service
//   - ApprovalAPI: approval record reads and mutations
//   - IntegrationAPI: integration config CRUD, dispatch and audit logs
//   - WorkflowAPI: read-only workflow execution status
//   - CacheStore: versioned shared read caches with explicit invalidation
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Notifier: toast and OS-level notification sink. Without it,
//     transitions still invalidate caches but render nothing.
//   - ActivityStore: local activity trail. Without it, history is not kept.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
