package services

import (
	"context"
	"io"
	"sync"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// --- Mock document API ---

// mockDocumentAPI serves a scripted sequence of statuses per document
// and counts detail reads.
type mockDocumentAPI struct {
	mu        sync.Mutex
	documents map[string]*domain.Document
	sequences map[string][]domain.DocumentStatus
	getCalls  map[string]int
	listCalls int
	getErr    error
	listErr   error
	listErrs  []error // consumed per call, nil entry means success
	uploaded  []string
}

func newMockDocumentAPI() *mockDocumentAPI {
	return &mockDocumentAPI{
		documents: make(map[string]*domain.Document),
		sequences: make(map[string][]domain.DocumentStatus),
		getCalls:  make(map[string]int),
	}
}

func (m *mockDocumentAPI) addDocument(doc domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ID] = &doc
}

// script sets the statuses returned by successive GetDocument calls.
// The last status repeats once the sequence is exhausted.
func (m *mockDocumentAPI) script(documentID string, statuses ...domain.DocumentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequences[documentID] = statuses
}

func (m *mockDocumentAPI) getCallCount(documentID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls[documentID]
}

func (m *mockDocumentAPI) ListDocuments(_ context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.listErrs) > 0 {
		err := m.listErrs[0]
		m.listErrs = m.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	docs := make([]domain.Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (m *mockDocumentAPI) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCalls[id]++
	if m.getErr != nil {
		return nil, m.getErr
	}

	doc, ok := m.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	result := *doc
	if seq := m.sequences[id]; len(seq) > 0 {
		idx := m.getCalls[id] - 1
		if idx >= len(seq) {
			idx = len(seq) - 1
		}
		result.Status = seq[idx]
	}
	return &result, nil
}

func (m *mockDocumentAPI) UploadDocument(_ context.Context, filename string, _ io.Reader) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploaded = append(m.uploaded, filename)
	return &domain.Document{ID: "up-" + filename, Filename: filename, Status: domain.DocumentStatusQueued}, nil
}

// --- Mock cache store ---

type mockCache struct {
	mu            sync.Mutex
	values        map[domain.CacheKey]any
	versions      map[domain.CacheKey]uint64
	invalidations map[domain.CacheKey]int
	subscribers   []func(domain.CacheKey)
}

func newMockCache() *mockCache {
	return &mockCache{
		values:        make(map[domain.CacheKey]any),
		versions:      make(map[domain.CacheKey]uint64),
		invalidations: make(map[domain.CacheKey]int),
	}
}

func (m *mockCache) Get(key domain.CacheKey) (any, uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, m.versions[key], ok
}

func (m *mockCache) Put(key domain.CacheKey, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *mockCache) Invalidate(key domain.CacheKey) {
	m.mu.Lock()
	delete(m.values, key)
	m.versions[key]++
	m.invalidations[key]++
	subs := append([]func(domain.CacheKey){}, m.subscribers...)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

func (m *mockCache) Version(key domain.CacheKey) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[key]
}

func (m *mockCache) Subscribe(fn func(domain.CacheKey)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
	return func() {}
}

func (m *mockCache) invalidationCount(key domain.CacheKey) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.invalidations[key]
}

// --- Mock transition sink ---

type mockSink struct {
	mu        sync.Mutex
	completed []string
	failed    []string
}

func (m *mockSink) DocumentCompleted(doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, doc.ID)
}

func (m *mockSink) DocumentFailed(doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, doc.ID)
}

func (m *mockSink) completedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completed)
}

func (m *mockSink) failedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.failed)
}

// --- Mock approval API ---

type mockApprovalAPI struct {
	mu            sync.Mutex
	records       map[string]*domain.ApprovalRecord
	listCalls     int
	mutationCalls int
	listErrs      []error // consumed per call, nil entry means success
	mutateErr     error
}

func newMockApprovalAPI() *mockApprovalAPI {
	return &mockApprovalAPI{records: make(map[string]*domain.ApprovalRecord)}
}

func (m *mockApprovalAPI) addRecord(rec domain.ApprovalRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = &rec
}

func (m *mockApprovalAPI) mutationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutationCalls
}

func (m *mockApprovalAPI) ListApprovals(_ context.Context, _ driven.ApprovalFilters) ([]domain.ApprovalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls++
	if len(m.listErrs) > 0 {
		err := m.listErrs[0]
		m.listErrs = m.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	records := make([]domain.ApprovalRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, *rec)
	}
	return records, nil
}

func (m *mockApprovalAPI) mutate(id string, status domain.ApprovalStatus) (*domain.ApprovalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutationCalls++
	if m.mutateErr != nil {
		return nil, m.mutateErr
	}
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.Status = status
	result := *rec
	return &result, nil
}

func (m *mockApprovalAPI) Approve(_ context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	rec, err := m.mutate(id, domain.ApprovalStatusApproved)
	if rec != nil {
		rec.Comments = comments
	}
	return rec, err
}

func (m *mockApprovalAPI) Reject(_ context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	rec, err := m.mutate(id, domain.ApprovalStatusRejected)
	if rec != nil {
		rec.Comments = comments
	}
	return rec, err
}

func (m *mockApprovalAPI) Delegate(_ context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error) {
	rec, err := m.mutate(id, domain.ApprovalStatusDelegated)
	if rec != nil {
		rec.DelegatedTo = delegatedToID
		rec.DelegationReason = reason
	}
	return rec, err
}

func (m *mockApprovalAPI) RemoveApproval(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutationCalls++
	if m.mutateErr != nil {
		return m.mutateErr
	}
	if _, ok := m.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// --- Mock workflow API ---

type mockWorkflowAPI struct {
	mu         sync.Mutex
	executions []domain.WorkflowExecution
	listCalls  int
}

func (m *mockWorkflowAPI) ListExecutions(_ context.Context) ([]domain.WorkflowExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return append([]domain.WorkflowExecution{}, m.executions...), nil
}

// --- Mock integration API ---

type mockIntegrationAPI struct {
	mu            sync.Mutex
	configs       []domain.IntegrationConfig
	logs          []domain.IntegrationAuditLog
	listCalls     int
	listErrs      []error // consumed per call, nil entry means success
	logCalls      int
	logErrs       []error
	dispatchCalls int
	dispatchErr   error
}

func (m *mockIntegrationAPI) dispatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchCalls
}

func (m *mockIntegrationAPI) ListIntegrations(_ context.Context) ([]domain.IntegrationConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if len(m.listErrs) > 0 {
		err := m.listErrs[0]
		m.listErrs = m.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return append([]domain.IntegrationConfig{}, m.configs...), nil
}

func (m *mockIntegrationAPI) CreateIntegration(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *cfg
	created.ID = "int-new"
	m.configs = append(m.configs, created)
	return &created, nil
}

func (m *mockIntegrationAPI) UpdateIntegration(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		if m.configs[i].ID == cfg.ID {
			m.configs[i] = *cfg
			result := *cfg
			return &result, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockIntegrationAPI) DeleteIntegration(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		if m.configs[i].ID == id {
			m.configs = append(m.configs[:i], m.configs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockIntegrationAPI) TestConnection(_ context.Context, _ string) error {
	return nil
}

func (m *mockIntegrationAPI) Dispatch(_ context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatchCalls++
	if m.dispatchErr != nil {
		return nil, m.dispatchErr
	}
	log := domain.IntegrationAuditLog{
		ID:                  "audit-1",
		DocumentID:          documentID,
		IntegrationConfigID: integrationID,
		Status:              domain.AuditStatusPending,
	}
	m.logs = append(m.logs, log)
	return &log, nil
}

func (m *mockIntegrationAPI) ListAuditLogs(_ context.Context) ([]domain.IntegrationAuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logCalls++
	if len(m.logErrs) > 0 {
		err := m.logErrs[0]
		m.logErrs = m.logErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return append([]domain.IntegrationAuditLog{}, m.logs...), nil
}

// --- Mock notifier ---

type mockNotifier struct {
	mu      sync.Mutex
	toasts  []mockToast
	osCalls []mockOSCall
}

type mockToast struct {
	level   driven.ToastLevel
	title   string
	message string
}

type mockOSCall struct {
	tag   string
	title string
}

func (m *mockNotifier) Toast(level driven.ToastLevel, title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toasts = append(m.toasts, mockToast{level: level, title: title, message: message})
}

func (m *mockNotifier) OSNotify(tag, title, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.osCalls = append(m.osCalls, mockOSCall{tag: tag, title: title})
}

// --- Mock activity store ---

type mockActivityStore struct {
	mu      sync.Mutex
	records []domain.ActivityRecord
}

func (m *mockActivityStore) Record(_ context.Context, rec *domain.ActivityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockActivityStore) List(_ context.Context, limit int) ([]domain.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return append([]domain.ActivityRecord{}, m.records[:limit]...), nil
}

func (m *mockActivityStore) ListByDocument(_ context.Context, documentID string, limit int) ([]domain.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.ActivityRecord
	for _, rec := range m.records {
		if rec.DocumentID == documentID && len(result) < limit {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *mockActivityStore) Prune(_ context.Context, _ int) error { return nil }

func (m *mockActivityStore) Close() error { return nil }
