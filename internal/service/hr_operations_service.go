package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/cache"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

const (
	defaultActivityLimit  = 10
	maxActivityLimit      = 100
	defaultStaleThreshold = 30 * 24 * time.Hour
	maintenanceDepartment = "Maintenance"
)

// HROperationsService implements the recruiting workflow over the HR dataset:
// applications, positions, recruiters, departments, onboarding and the
// dashboard feed.
type HROperationsService struct {
	store          repository.HRStore
	stats          cache.StatsCache
	dispatcher     events.Dispatcher
	logger         *zap.Logger
	staleThreshold time.Duration
	now            func() time.Time
}

// HROperationsDependencies bundles collaborators for the service.
type HROperationsDependencies struct {
	Store          repository.HRStore
	StatsCache     cache.StatsCache
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
	StaleThreshold time.Duration
	Clock          func() time.Time
}

// NewHROperationsService constructs the service.
func NewHROperationsService(deps HROperationsDependencies) *HROperationsService {
	svc := &HROperationsService{
		store:          deps.Store,
		stats:          deps.StatsCache,
		dispatcher:     deps.Dispatcher,
		logger:         deps.Logger,
		staleThreshold: deps.StaleThreshold,
		now:            deps.Clock,
	}
	if svc.stats == nil {
		svc.stats = cache.NewStatsCache(nil, 0)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.staleThreshold <= 0 {
		svc.staleThreshold = defaultStaleThreshold
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// CandidateApplicationInput describes an incoming internal application.
type CandidateApplicationInput struct {
	Name            string
	Email           string
	Phone           string
	PositionApplied string
	PositionID      int
	Skills          []string
	Experience      string
	Resume          string
	Description     string
	Department      string
	Priority        domain.Priority
	AdditionalInfo  map[string]string
}

// CandidateApplicationResult holds the records created for an application.
type CandidateApplicationResult struct {
	Candidate   domain.Candidate
	Application domain.Application
}

// DashboardOverview combines the dashboard widgets in one payload.
type DashboardOverview struct {
	Stats          domain.DashboardStats `json:"stats"`
	RecentActivity []domain.Activity     `json:"recentActivity"`
	Departments    []domain.Department   `json:"departments"`
}

// ProcessCandidateApplication registers a new candidate together with a
// pending application for the requested position.
func (s *HROperationsService) ProcessCandidateApplication(ctx context.Context, input CandidateApplicationInput) (*CandidateApplicationResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.PositionApplied = strings.TrimSpace(input.PositionApplied)

	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}

	var result CandidateApplicationResult
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		department := strings.TrimSpace(input.Department)
		if input.PositionID != 0 {
			position := d.Position(input.PositionID)
			if position == nil {
				return nil, apperrors.NewNotFound("position", map[string]any{"id": input.PositionID})
			}
			if input.PositionApplied == "" {
				input.PositionApplied = position.Title
			}
			if department == "" {
				department = position.Department
			}
		}
		if missing := missingFields(map[string]string{
			"name":            input.Name,
			"email":           input.Email,
			"positionApplied": input.PositionApplied,
		}); len(missing) > 0 {
			return nil, apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
		}
		if department == "" {
			department = "General"
		}

		candidate := domain.Candidate{
			ID:              d.NextCandidateID(),
			Name:            input.Name,
			Email:           input.Email,
			Phone:           input.Phone,
			PositionApplied: input.PositionApplied,
			Status:          domain.CandidateStatusApplied,
			Skills:          nonNilStrings(input.Skills),
			Experience:      defaultString(input.Experience, "Not specified"),
			Resume:          defaultString(input.Resume, "Not provided"),
			AppliedDate:     now,
			Extra:           input.AdditionalInfo,
		}
		application := domain.Application{
			ID:            d.NextApplicationID(),
			CandidateID:   candidate.ID,
			CandidateName: candidate.Name,
			PositionID:    input.PositionID,
			Title:         input.PositionApplied + " Application",
			Description:   defaultString(input.Description, "No description"),
			Department:    department,
			Priority:      input.Priority,
			Status:        domain.ApplicationStatusPending,
			CreatedAt:     now,
		}

		d.Candidates = append(d.Candidates, candidate)
		d.Applications = append(d.Applications, application)
		d.AddActivity(domain.ActivityApplication, "New application received",
			fmt.Sprintf("%s - %s", candidate.Name, input.PositionApplied), now)

		result = CandidateApplicationResult{Candidate: candidate, Application: application}
		return []events.Event{{
			Type:     events.EventApplicationReceived,
			EntityID: strconv.Itoa(application.ID),
			Payload: events.ApplicationReceivedPayload{
				CandidateID:   candidate.ID,
				CandidateName: candidate.Name,
				Position:      input.PositionApplied,
				Department:    department,
				Priority:      application.Priority,
			},
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateApplicationStatus moves an application and its candidate through the
// funnel. Completing an application fills its position.
func (s *HROperationsService) UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid application status", map[string]any{"status": status})
	}

	var updated domain.Application
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		app := d.Application(id)
		if app == nil {
			return nil, apperrors.NewNotFound("application", map[string]any{"id": id})
		}
		evs := applyApplicationStatus(d, app, status, now)
		updated = *app
		return evs, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func applyApplicationStatus(d *repository.Dataset, app *domain.Application, status domain.ApplicationStatus, now time.Time) []events.Event {
	var evs []events.Event

	oldStatus := app.Status
	app.Status = status
	if status == domain.ApplicationStatusCompleted && app.CompletedAt == nil {
		completedAt := now
		app.CompletedAt = &completedAt
	}

	if candidate := d.CandidateForApplication(app); candidate != nil {
		if next, ok := status.CandidateStatus(); ok && candidate.Status != next {
			evs = append(evs, candidateStatusEvent(candidate, next))
			candidate.Status = next
		}
	}

	if status == domain.ApplicationStatusCompleted {
		if position := d.Position(app.PositionID); position != nil {
			evs = append(evs, positionStatusEvent(position, domain.PositionStatusFilled))
			position.Status = domain.PositionStatusFilled
			position.UpdatedAt = now
			d.AddActivity(domain.ActivityPosition, "Position status updated",
				fmt.Sprintf("%s marked as %s", position.Title, position.Status), now)
		}
	}

	d.AddActivity(domain.ActivityApplication, "Application "+strings.ToLower(string(status)),
		fmt.Sprintf("%s - %s", app.CandidateName, app.Title), now)

	return append(evs, events.Event{
		Type:     events.EventApplicationStatusChanged,
		EntityID: strconv.Itoa(app.ID),
		Payload:  events.ApplicationStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
}

// UpdatePositionStatus changes a requisition's state.
func (s *HROperationsService) UpdatePositionStatus(ctx context.Context, id int, status domain.PositionStatus) (*domain.Position, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid position status", map[string]any{"status": status})
	}

	var updated domain.Position
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		position := d.Position(id)
		if position == nil {
			return nil, apperrors.NewNotFound("position", map[string]any{"id": id})
		}
		ev := positionStatusEvent(position, status)
		position.Status = status
		position.UpdatedAt = now
		d.AddActivity(domain.ActivityPosition, "Position status updated",
			fmt.Sprintf("%s marked as %s", position.Title, status), now)
		updated = *position
		return []events.Event{ev}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateRecruiterStatus changes a recruiter's presence and refreshes the
// stats of their department.
func (s *HROperationsService) UpdateRecruiterStatus(ctx context.Context, id int, status domain.RecruiterStatus) (*domain.Recruiter, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid recruiter status", map[string]any{"status": status})
	}

	var updated domain.Recruiter
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		recruiter := d.Recruiter(id)
		if recruiter == nil {
			return nil, apperrors.NewNotFound("recruiter", map[string]any{"id": id})
		}
		ev := events.Event{
			Type:     events.EventRecruiterStatusChanged,
			EntityID: strconv.Itoa(recruiter.ID),
			Payload: events.RecruiterStatusChangedPayload{
				Name:       recruiter.Name,
				Department: recruiter.Department,
				OldStatus:  recruiter.Status,
				NewStatus:  status,
			},
		}
		recruiter.Status = status
		if dept := d.Department(recruiter.Department); dept != nil {
			refreshDepartmentStats(d, dept)
		}
		updated = *recruiter
		return []events.Event{ev}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ProcessNewHire completes an application and opens an onboarding checklist
// for the hire.
func (s *HROperationsService) ProcessNewHire(ctx context.Context, applicationID int) (*domain.Onboarding, error) {
	var created domain.Onboarding
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		app := d.Application(applicationID)
		if app == nil {
			return nil, apperrors.NewNotFound("application", map[string]any{"id": applicationID})
		}
		for _, existing := range d.Onboarding {
			if existing.ApplicationID == applicationID {
				return nil, apperrors.NewConflict("onboarding already started", map[string]any{"onboardingId": existing.ID})
			}
		}

		evs := applyApplicationStatus(d, app, domain.ApplicationStatusCompleted, now)

		onboarding := domain.Onboarding{
			ID:            d.NextOnboardingID(),
			ApplicationID: app.ID,
			PositionID:    app.PositionID,
			HireDate:      now.Format(time.DateOnly),
			Status:        domain.OnboardingStatusInProgress,
			Tasks:         domain.DefaultOnboardingTasks(),
			CreatedAt:     now,
		}
		if candidate := d.CandidateForApplication(app); candidate != nil {
			onboarding.CandidateID = candidate.ID
		}
		d.Onboarding = append(d.Onboarding, onboarding)
		d.AddActivity(domain.ActivityOnboarding, "New hire onboarding started",
			fmt.Sprintf("%s hired for %s", app.CandidateName, app.Title), now)

		created = onboarding
		return append(evs, events.Event{
			Type:     events.EventOnboardingStarted,
			EntityID: strconv.Itoa(onboarding.ID),
			Payload: events.OnboardingPayload{
				ApplicationID: app.ID,
				PositionID:    app.PositionID,
				HireDate:      onboarding.HireDate,
			},
		}), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOnboardingTask ticks a checklist item. The record is COMPLETED
// exactly when every task is.
func (s *HROperationsService) UpdateOnboardingTask(ctx context.Context, onboardingID, taskID int, completed bool) (*domain.Onboarding, error) {
	var updated domain.Onboarding
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		record := d.OnboardingRecord(onboardingID)
		if record == nil {
			return nil, apperrors.NewNotFound("onboarding record", map[string]any{"id": onboardingID})
		}
		var task *domain.OnboardingTask
		for i := range record.Tasks {
			if record.Tasks[i].ID == taskID {
				task = &record.Tasks[i]
				break
			}
		}
		if task == nil {
			return nil, apperrors.NewNotFound("onboarding task", map[string]any{"onboardingId": onboardingID, "taskId": taskID})
		}

		wasCompleted := record.Status == domain.OnboardingStatusCompleted
		task.Completed = completed
		record.RefreshStatus()
		updated = *record

		if wasCompleted || record.Status != domain.OnboardingStatusCompleted {
			return nil, nil
		}
		d.AddActivity(domain.ActivityOnboarding, "Onboarding completed",
			fmt.Sprintf("Onboarding %d finished all tasks", record.ID), now)
		return []events.Event{{
			Type:     events.EventOnboardingCompleted,
			EntityID: strconv.Itoa(record.ID),
			Payload: events.OnboardingPayload{
				ApplicationID: record.ApplicationID,
				PositionID:    record.PositionID,
				HireDate:      record.HireDate,
			},
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateDepartmentStats recomputes the recruiter count and average
// performance of a department.
func (s *HROperationsService) UpdateDepartmentStats(ctx context.Context, name string) (*domain.Department, error) {
	var updated domain.Department
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		dept := d.Department(name)
		if dept == nil {
			return nil, apperrors.NewNotFound("department", map[string]any{"name": name})
		}
		refreshDepartmentStats(d, dept)
		updated = *dept
		return []events.Event{departmentEvent(dept)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateDepartmentHead assigns a new head to a department.
func (s *HROperationsService) UpdateDepartmentHead(ctx context.Context, name, head string) (*domain.Department, error) {
	head = strings.TrimSpace(head)
	if head == "" {
		return nil, apperrors.NewValidationError("head is required", nil)
	}

	var updated domain.Department
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		dept := d.Department(name)
		if dept == nil {
			return nil, apperrors.NewNotFound("department", map[string]any{"name": name})
		}
		dept.Head = head
		d.AddActivity(domain.ActivityDepartment, "Department head updated",
			fmt.Sprintf("%s head changed to %s", dept.Name, head), now)
		updated = *dept
		return []events.Event{departmentEvent(dept)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateCandidateStatus sets a candidate's funnel state. Hiring a candidate
// completes every application they filed.
func (s *HROperationsService) UpdateCandidateStatus(ctx context.Context, id int, status domain.CandidateStatus) (*domain.Candidate, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid candidate status", map[string]any{"status": status})
	}

	var updated domain.Candidate
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		candidate := d.Candidate(id)
		if candidate == nil {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"id": id})
		}
		evs := []events.Event{candidateStatusEvent(candidate, status)}
		candidate.Status = status
		d.AddActivity(domain.ActivityCandidate, "Candidate status updated",
			fmt.Sprintf("%s marked as %s", candidate.Name, status), now)

		if status == domain.CandidateStatusHired {
			for i := range d.Applications {
				app := &d.Applications[i]
				if owner := d.CandidateForApplication(app); owner == nil || owner.ID != candidate.ID {
					continue
				}
				if app.Status != domain.ApplicationStatusCompleted {
					evs = append(evs, events.Event{
						Type:     events.EventApplicationStatusChanged,
						EntityID: strconv.Itoa(app.ID),
						Payload: events.ApplicationStatusChangedPayload{
							OldStatus: app.Status,
							NewStatus: domain.ApplicationStatusCompleted,
						},
					})
				}
				app.Status = domain.ApplicationStatusCompleted
				if app.CompletedAt == nil {
					completedAt := now
					app.CompletedAt = &completedAt
				}
			}
		}
		updated = *candidate
		return evs, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DashboardStats returns the dashboard counters, served from the stats cache
// when the cached snapshot matches the current dataset revision.
func (s *HROperationsService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var revision uint64
	if err := s.store.View(ctx, func(d *repository.Dataset) error {
		revision = d.Revision
		return nil
	}); err != nil {
		return domain.DashboardStats{}, err
	}

	cached, err := s.stats.Get(ctx)
	switch {
	case err == nil && cached.Revision == revision:
		return cached.Stats, nil
	case err != nil && !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("stats cache read failed", zap.Error(err))
	}

	var snapshot cache.StatsSnapshot
	if err := s.store.View(ctx, func(d *repository.Dataset) error {
		snapshot = cache.StatsSnapshot{Revision: d.Revision, Stats: computeStats(d)}
		return nil
	}); err != nil {
		return domain.DashboardStats{}, err
	}
	if err := s.stats.Set(ctx, snapshot); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
	return snapshot.Stats, nil
}

// RecentActivity returns the newest feed entries first. A non-positive limit
// means the default of 10.
func (s *HROperationsService) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	var out []domain.Activity
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		out = append([]domain.Activity{}, d.Activity...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Overview bundles stats, the latest activity and department standings.
func (s *HROperationsService) Overview(ctx context.Context) (*DashboardOverview, error) {
	stats, err := s.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	activity, err := s.RecentActivity(ctx, defaultActivityLimit)
	if err != nil {
		return nil, err
	}
	departments, err := s.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardOverview{Stats: stats, RecentActivity: activity, Departments: departments}, nil
}

// RunDailyOperations flags stale applications, logs work anniversaries and
// produces the daily report.
func (s *HROperationsService) RunDailyOperations(ctx context.Context) (*domain.DailyReport, error) {
	var report domain.DailyReport
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		staleDays := int(s.staleThreshold / (24 * time.Hour))
		alerts := []domain.StaleApplicationAlert{}
		for _, app := range d.Applications {
			if app.Status != domain.ApplicationStatusPending {
				continue
			}
			age := now.Sub(app.CreatedAt)
			if age <= s.staleThreshold {
				continue
			}
			alerts = append(alerts, domain.StaleApplicationAlert{
				ApplicationID: app.ID,
				CandidateName: app.CandidateName,
				Title:         app.Title,
				CreatedAt:     app.CreatedAt,
				DaysPending:   int(age / (24 * time.Hour)),
			})
			d.AddActivity(domain.ActivityApplication, "Application stale alert",
				fmt.Sprintf("%s - %s pending for more than %d days", app.CandidateName, app.Title, staleDays), now)
		}

		for _, recruiter := range d.Recruiters {
			years, ok := anniversaryYears(recruiter.HireDate, now)
			if !ok {
				continue
			}
			d.AddActivity(domain.ActivityRecruiter, "Work anniversary",
				fmt.Sprintf("%s celebrates %d year(s) with the team", recruiter.Name, years), now)
		}

		report = domain.DailyReport{
			Date:              now.Format(time.DateOnly),
			Summary:           computeStats(d),
			NewApplications:   countApplicationsOn(d, now),
			ActivitiesLogged:  countActivityOn(d, now),
			StaleApplications: alerts,
			GeneratedAt:       now,
		}
		d.AddActivity(domain.ActivityReport, "Daily report generated",
			fmt.Sprintf("%d new applications, %d stale", report.NewApplications, len(alerts)), now)

		return []events.Event{{
			Type:     events.EventDailyReportGenerated,
			EntityID: report.Date,
			Payload:  events.DailyReportGeneratedPayload{Report: report},
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("daily operations completed",
		zap.String("date", report.Date),
		zap.Int("stale_applications", len(report.StaleApplications)),
		zap.Int("new_applications", report.NewApplications))
	return &report, nil
}

// CandidateFilter narrows candidate listings.
type CandidateFilter struct {
	Status *domain.CandidateStatus
}

// ListCandidates returns candidates in id order.
func (s *HROperationsService) ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error) {
	out := []domain.Candidate{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, c := range d.Candidates {
			if filter.Status != nil && c.Status != *filter.Status {
				continue
			}
			out = append(out, c)
		}
		return nil
	})
	return out, err
}

// GetCandidate returns one candidate.
func (s *HROperationsService) GetCandidate(ctx context.Context, id int) (*domain.Candidate, error) {
	var found *domain.Candidate
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		if c := d.Candidate(id); c != nil {
			copied := *c
			found = &copied
			return nil
		}
		return apperrors.NewNotFound("candidate", map[string]any{"id": id})
	})
	return found, err
}

// PositionFilter narrows position listings.
type PositionFilter struct {
	Status     *domain.PositionStatus
	Department string
}

// ListPositions returns positions in id order.
func (s *HROperationsService) ListPositions(ctx context.Context, filter PositionFilter) ([]domain.Position, error) {
	out := []domain.Position{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, p := range d.Positions {
			if filter.Status != nil && p.Status != *filter.Status {
				continue
			}
			if filter.Department != "" && !strings.EqualFold(p.Department, filter.Department) {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

// GetPosition returns one position.
func (s *HROperationsService) GetPosition(ctx context.Context, id int) (*domain.Position, error) {
	var found *domain.Position
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		if p := d.Position(id); p != nil {
			copied := *p
			found = &copied
			return nil
		}
		return apperrors.NewNotFound("position", map[string]any{"id": id})
	})
	return found, err
}

// RecruiterFilter narrows recruiter listings.
type RecruiterFilter struct {
	Status     *domain.RecruiterStatus
	Department string
}

// ListRecruiters returns recruiters in id order.
func (s *HROperationsService) ListRecruiters(ctx context.Context, filter RecruiterFilter) ([]domain.Recruiter, error) {
	out := []domain.Recruiter{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, r := range d.Recruiters {
			if filter.Status != nil && r.Status != *filter.Status {
				continue
			}
			if filter.Department != "" && !strings.EqualFold(r.Department, filter.Department) {
				continue
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// GetRecruiter returns one recruiter.
func (s *HROperationsService) GetRecruiter(ctx context.Context, id int) (*domain.Recruiter, error) {
	var found *domain.Recruiter
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		if r := d.Recruiter(id); r != nil {
			copied := *r
			found = &copied
			return nil
		}
		return apperrors.NewNotFound("recruiter", map[string]any{"id": id})
	})
	return found, err
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	Status     *domain.ApplicationStatus
	Priority   *domain.Priority
	Department string
}

// ListApplications returns applications in id order.
func (s *HROperationsService) ListApplications(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	out := []domain.Application{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, a := range d.Applications {
			if filter.Status != nil && a.Status != *filter.Status {
				continue
			}
			if filter.Priority != nil && a.Priority != *filter.Priority {
				continue
			}
			if filter.Department != "" && !strings.EqualFold(a.Department, filter.Department) {
				continue
			}
			out = append(out, a)
		}
		return nil
	})
	return out, err
}

// GetApplication returns one application.
func (s *HROperationsService) GetApplication(ctx context.Context, id int) (*domain.Application, error) {
	var found *domain.Application
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		if a := d.Application(id); a != nil {
			copied := *a
			found = &copied
			return nil
		}
		return apperrors.NewNotFound("application", map[string]any{"id": id})
	})
	return found, err
}

// ListDepartments returns all departments.
func (s *HROperationsService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		out = append([]domain.Department{}, d.Departments...)
		return nil
	})
	return out, err
}

// ListOnboarding returns onboarding records, optionally by status.
func (s *HROperationsService) ListOnboarding(ctx context.Context, status *domain.OnboardingStatus) ([]domain.Onboarding, error) {
	out := []domain.Onboarding{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, o := range d.Onboarding {
			if status != nil && o.Status != *status {
				continue
			}
			out = append(out, o)
		}
		return nil
	})
	return out, err
}

// GetOnboarding returns one onboarding record.
func (s *HROperationsService) GetOnboarding(ctx context.Context, id int) (*domain.Onboarding, error) {
	var found *domain.Onboarding
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		if o := d.OnboardingRecord(id); o != nil {
			copied := *o
			found = &copied
			return nil
		}
		return apperrors.NewNotFound("onboarding record", map[string]any{"id": id})
	})
	return found, err
}

// mutate runs fn inside a store transaction, then drops the cached stats and
// publishes whatever events fn produced. Events are only published after the
// change is committed.
func (s *HROperationsService) mutate(ctx context.Context, fn func(d *repository.Dataset, now time.Time) ([]events.Event, error)) error {
	now := s.now().UTC()
	var pending []events.Event
	err := s.store.Update(ctx, func(d *repository.Dataset) error {
		evs, err := fn(d, now)
		if err != nil {
			return err
		}
		pending = evs
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.stats.Invalidate(ctx); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
	for _, ev := range pending {
		if ev.Timestamp.IsZero() {
			ev.Timestamp = now
		}
		s.publishEvent(ctx, ev)
	}
	return nil
}

func (s *HROperationsService) publishEvent(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.logger, s.now().UTC(), event)
}

// publishEvent stamps and dispatches an event. Handler failures are logged
// and never reach the caller.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, at time.Time, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = at
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func computeStats(d *repository.Dataset) domain.DashboardStats {
	var stats domain.DashboardStats
	for _, a := range d.Applications {
		if a.Status == domain.ApplicationStatusPending {
			stats.PendingApplications++
		}
	}
	for _, c := range d.Candidates {
		if c.Status.Active() {
			stats.ActiveCandidates++
		}
		if c.Status == domain.CandidateStatusHired {
			stats.CompletedHires++
		}
	}
	for _, p := range d.Positions {
		if p.Status == domain.PositionStatusOpen {
			stats.AvailablePositions++
		}
	}
	for _, r := range d.Recruiters {
		if r.Status == domain.RecruiterStatusActive {
			stats.ActiveRecruiters++
		}
	}
	for _, o := range d.Onboarding {
		if o.Status == domain.OnboardingStatusInProgress {
			stats.OnboardingInProgress++
		}
	}
	stats.TotalDepartments = len(d.Departments)
	for _, r := range d.Requests {
		if r.Status == domain.GuestRequestStatusPending {
			stats.PendingRequests++
		}
		if r.Department == maintenanceDepartment {
			stats.MaintenanceRequests++
		}
	}
	for _, r := range d.Rooms {
		switch {
		case r.Status == domain.RoomStatusClean:
			stats.AvailableRooms++
		case r.Status.Occupied():
			stats.OccupiedRooms++
		}
	}
	for _, item := range d.Inventory {
		if item.LowStock() {
			stats.LowStockItems++
		}
	}
	return stats
}

func refreshDepartmentStats(d *repository.Dataset, dept *domain.Department) {
	count, total := 0, 0
	for _, r := range d.Recruiters {
		if r.Department != dept.Name {
			continue
		}
		count++
		total += r.Performance
	}
	dept.RecruiterCount = count
	dept.Performance = 0
	if count > 0 {
		// round half up, matching the dashboard's integer percentages
		dept.Performance = (2*total + count) / (2 * count)
	}
}

func countApplicationsOn(d *repository.Dataset, day time.Time) int {
	n := 0
	for _, a := range d.Applications {
		if sameDay(a.CreatedAt, day) {
			n++
		}
	}
	return n
}

func countActivityOn(d *repository.Dataset, day time.Time) int {
	n := 0
	for _, a := range d.Activity {
		if sameDay(a.Timestamp, day) {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// anniversaryYears reports whether now is a hire-date anniversary and how
// many years have passed.
func anniversaryYears(hireDate string, now time.Time) (int, bool) {
	hired, err := time.Parse(time.DateOnly, hireDate)
	if err != nil {
		return 0, false
	}
	now = now.UTC()
	if hired.Month() != now.Month() || hired.Day() != now.Day() || hired.Year() >= now.Year() {
		return 0, false
	}
	return now.Year() - hired.Year(), true
}

func candidateStatusEvent(c *domain.Candidate, next domain.CandidateStatus) events.Event {
	return events.Event{
		Type:     events.EventCandidateStatusChanged,
		EntityID: strconv.Itoa(c.ID),
		Payload:  events.CandidateStatusChangedPayload{Name: c.Name, OldStatus: c.Status, NewStatus: next},
	}
}

func positionStatusEvent(p *domain.Position, next domain.PositionStatus) events.Event {
	return events.Event{
		Type:     events.EventPositionStatusChanged,
		EntityID: strconv.Itoa(p.ID),
		Payload:  events.PositionStatusChangedPayload{Title: p.Title, OldStatus: p.Status, NewStatus: next},
	}
}

func departmentEvent(dept *domain.Department) events.Event {
	return events.Event{
		Type:     events.EventDepartmentUpdated,
		EntityID: dept.Name,
		Payload: events.DepartmentUpdatedPayload{
			Head:           dept.Head,
			RecruiterCount: dept.RecruiterCount,
			Performance:    dept.Performance,
		},
	}
}

// missingFields returns the names of empty values in a stable order.
func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
