package domain

// CacheKey identifies one shared read cache. Every state-changing
// operation must invalidate exactly the keys whose underlying server
// state it changed, so all observers converge on server truth.
type CacheKey string

// Shared read caches.
const (
	// CacheDocumentsList is the document list.
	CacheDocumentsList CacheKey = "documents-list"

	// CacheApprovalsList is the approvals list.
	CacheApprovalsList CacheKey = "approvals-list"

	// CacheWorkflowExecutions is the workflow execution status list.
	CacheWorkflowExecutions CacheKey = "workflow-executions"

	// CacheIntegrationsList is the integration configuration list.
	CacheIntegrationsList CacheKey = "integrations-list"

	// CacheIntegrationLogs is the integration audit log list.
	CacheIntegrationLogs CacheKey = "integration-logs"
)

// DocumentDetailKey returns the cache key for one document's detail.
func DocumentDetailKey(documentID string) CacheKey {
	return CacheKey("document-detail/" + documentID)
}
