package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"talent-crm/internal/domain"
	"talent-crm/internal/reporting"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

const dashboardCacheTTL = 30 * time.Second

type RecentActivity struct {
	ActivityID uuid.UUID `json:"activity_id"`
	Type       string    `json:"type"`
	Subject    string    `json:"subject"`
	CreatedAt  time.Time `json:"created_at"`
}

type DashboardData struct {
	Window          reporting.Window `json:"window"`
	OpenTasks       int              `json:"open_tasks"`
	OverdueTasks    int              `json:"overdue_tasks"`
	InInterview     int              `json:"in_interview"`
	Hired           int              `json:"hired"`
	TotalActivities int              `json:"total_activities"`

	StageBuckets        []reporting.Bucket `json:"stage_buckets"`
	TaskStatusBuckets   []reporting.Bucket `json:"task_status_buckets"`
	ActivityTypeBuckets []reporting.Bucket `json:"activity_type_buckets"`
	RecentActivities    []RecentActivity   `json:"recent_activities"`

	GeneratedAt time.Time `json:"generated_at"`
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, window reporting.Window) (DashboardData, error)
}

type Dashboard struct {
	pipeline    repository.PipelineRepository
	tasks       repository.TaskRepository
	activities  repository.ActivityRepository
	cache       ReportCache
	log         *log.Logger
	recentLimit int
	now         func() time.Time
}

func NewDashboardUsecase(pipeline repository.PipelineRepository, tasks repository.TaskRepository, activities repository.ActivityRepository, cache ReportCache, logger *log.Logger, recentLimit int) *Dashboard {
	if logger == nil {
		logger = log.Default()
	}
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &Dashboard{
		pipeline:    pipeline,
		tasks:       tasks,
		activities:  activities,
		cache:       cache,
		log:         logger,
		recentLimit: recentLimit,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *Dashboard) GetDashboard(ctx context.Context, window reporting.Window) (DashboardData, error) {
	// "later" only makes sense against due dates; the dashboard rolls up
	// past-facing createdAt fields.
	switch window {
	case reporting.WindowAll, reporting.WindowToday, reporting.WindowThisWeek, reporting.WindowThisMonth:
	default:
		return DashboardData{}, ErrInvalidInput
	}

	key := DashboardCacheKey(window)
	if u.cache != nil {
		var cached DashboardData
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var (
		items      []domain.PipelineItem
		tasks      []domain.Task
		activities []domain.Activity

		errItems error
		errTasks error
		errActs  error
	)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, errItems = u.pipeline.ListPipelineItems(ctx)
		if errItems != nil {
			u.log.Printf("dashboard step=pipeline status=error err=%v", errItems)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		tasks, errTasks = u.tasks.ListTasks(ctx)
		if errTasks != nil {
			u.log.Printf("dashboard step=tasks status=error err=%v", errTasks)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		activities, errActs = u.activities.ListActivities(ctx)
		if errActs != nil {
			u.log.Printf("dashboard step=activities status=error err=%v", errActs)
		}
	}()

	wg.Wait()

	if errItems != nil || errTasks != nil || errActs != nil {
		return DashboardData{}, ErrInternal
	}

	data := BuildDashboard(u.now(), window, items, tasks, activities, u.recentLimit)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, data, dashboardCacheTTL); err != nil {
			u.log.Printf("dashboard cache_set status=error key=%s err=%v", key, err)
		}
	}

	return data, nil
}

// BuildDashboard is the pure report builder: it recomputes everything from
// the supplied collections and the reference time, holding no state between
// calls. Every collection is first narrowed to records whose CreatedAt falls
// inside the window.
func BuildDashboard(now time.Time, window reporting.Window, items []domain.PipelineItem, tasks []domain.Task, activities []domain.Activity, recentLimit int) DashboardData {
	if recentLimit <= 0 {
		recentLimit = 5
	}

	inWindow := func(ts time.Time) bool {
		return reporting.InWindow(ts, window, reporting.DirectionPast, now)
	}

	wItems := make([]domain.PipelineItem, 0, len(items))
	for _, it := range items {
		if inWindow(it.CreatedAt) {
			wItems = append(wItems, it)
		}
	}

	wTasks := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if inWindow(t.CreatedAt) {
			wTasks = append(wTasks, t)
		}
	}

	wActivities := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if inWindow(a.CreatedAt) {
			wActivities = append(wActivities, a)
		}
	}

	data := DashboardData{
		Window:          window,
		TotalActivities: len(wActivities),
		GeneratedAt:     now,
	}

	for _, t := range wTasks {
		if t.Status == domain.TaskOpen {
			data.OpenTasks++
		}
		if t.Overdue(now) {
			data.OverdueTasks++
		}
	}

	for _, it := range wItems {
		switch it.Stage {
		case domain.StageInterview:
			data.InInterview++
		case domain.StageHired:
			data.Hired++
		}
	}

	data.StageBuckets = reporting.AggregateByCategory(wItems, func(it domain.PipelineItem) string { return string(it.Stage) }, domain.Stages())
	data.TaskStatusBuckets = reporting.AggregateByCategory(wTasks, func(t domain.Task) string { return string(t.Status) }, domain.TaskStatuses())
	data.ActivityTypeBuckets = reporting.AggregateByCategory(wActivities, func(a domain.Activity) string { return string(a.Type) }, domain.ActivityTypes())

	recent := reporting.RecentN(wActivities, func(a domain.Activity) time.Time { return a.CreatedAt }, recentLimit)
	data.RecentActivities = make([]RecentActivity, 0, len(recent))
	for _, a := range recent {
		data.RecentActivities = append(data.RecentActivities, RecentActivity{
			ActivityID: a.ID,
			Type:       string(a.Type),
			Subject:    a.Subject,
			CreatedAt:  a.CreatedAt,
		})
	}

	return data
}
