package services

import (
	portsrepo "github.com/kasicka/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Record = NewRecordService(repos.RecordRepo, repos.CategoryRepo)
	container.Reporting = NewReportingService(repos.RecordRepo)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.RecordSvcFacade    = (*recordService)(nil)
	_ portssvc.CategorySvcFacade  = (*categoryService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
