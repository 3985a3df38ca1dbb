package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collegeops/attendance-service/events"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/store"
	"github.com/collegeops/attendance-service/validator"
)

// ServiceManager wires every service over one repository, one session
// store, one validator and one event publisher, and owns their
// lifecycle.
type ServiceManager interface {
	Identity() IdentityService
	Students() StudentService
	Sections() SectionService
	Advisors() AdvisorService
	Attendance() AttendanceService
	Dashboard() DashboardService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type serviceManager struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger

	identity   IdentityService
	students   StudentService
	sections   SectionService
	advisors   AdvisorService
	attendance AttendanceService
	dashboard  DashboardService
	export     ExportService
}

func NewServiceManager(repo repositories.Repository, sessions store.Store, logger *slog.Logger, v *validator.Validator, pub events.Publisher) ServiceManager {
	if logger == nil {
		logger = slog.Default()
	}
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &serviceManager{
		repo:      repo,
		publisher: pub,
		logger:    logger,

		identity:   NewIdentityService(repo, sessions, logger, v),
		students:   NewStudentService(repo, logger, v, pub),
		sections:   NewSectionService(repo, logger, v, pub),
		advisors:   NewAdvisorService(repo, logger, v, pub),
		attendance: NewAttendanceService(repo, logger, v, pub),
		dashboard:  NewDashboardService(repo, logger),
		export:     NewExportService(repo, logger),
	}
}

func (m *serviceManager) Identity() IdentityService     { return m.identity }
func (m *serviceManager) Students() StudentService      { return m.students }
func (m *serviceManager) Sections() SectionService      { return m.sections }
func (m *serviceManager) Advisors() AdvisorService      { return m.advisors }
func (m *serviceManager) Attendance() AttendanceService { return m.attendance }
func (m *serviceManager) Dashboard() DashboardService   { return m.dashboard }
func (m *serviceManager) Export() ExportService         { return m.export }

func (m *serviceManager) Initialize(ctx context.Context) error {
	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("store not reachable: %w", err)
	}
	m.logger.Info("services initialized")
	return nil
}

func (m *serviceManager) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := m.publisher.Close(); err != nil {
		firstErr = err
	}
	if err := m.repo.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return fmt.Errorf("shutdown incomplete: %w", firstErr)
	}
	m.logger.Info("services shut down")
	return nil
}
