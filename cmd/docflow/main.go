// Command docflow is a client for the document-processing service:
// upload documents, follow them through the async pipeline, work the
// approval queue, and dispatch processed documents to external systems.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/api/rest"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/notify"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docflow-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/services"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	cache := memory.NewCacheStore()

	// The activity trail persists across runs. A broken local database
	// should never block the CLI, so fall back to memory.
	var activityStore driven.ActivityStore
	if store, serr := sqlite.NewStore(""); serr == nil {
		activityStore = store
		defer store.Close() //nolint:errcheck
	} else {
		logger.Warn("activity database unavailable, history will not persist: %v", serr)
		activityStore = memory.NewActivityStore()
	}

	apiClient := rest.NewClient(rest.Config{
		BaseURL: configStore.GetString(file.KeyAPIBaseURL),
		Token:   configStore.GetString(file.KeyAPIToken),
	})

	// OS notifications need both the setting and the recorded grant.
	desktop := configStore.GetBool(file.KeyNotifyDesktop) && configStore.GetBool(file.KeyNotifyGranted)
	notifier := notify.NewNotifier(notify.WithDesktop(desktop))
	sink := services.NewNotificationDispatcher(notifier)

	pollInterval := time.Duration(configStore.GetInt(file.KeyPollInterval)) * time.Second

	documentSvc := services.NewDocumentService(apiClient, cache)
	coordinator := services.NewCoordinator(apiClient, cache, sink, activityStore, pollInterval)
	approvalSvc := services.NewApprovalService(apiClient, apiClient, cache, activityStore)
	integrationSvc := services.NewIntegrationService(apiClient, documentSvc, cache, sink, activityStore)
	activitySvc := services.NewActivityService(activityStore)

	defer coordinator.StopAll()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Document:    documentSvc,
		Approval:    approvalSvc,
		Integration: integrationSvc,
		Activity:    activitySvc,
		Coordinator: coordinator,
		Config:      configStore,
	})

	return cli.Execute()
}
