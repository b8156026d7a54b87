package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
)

// jobCatalog is the static position list. Salaries are daily rates in UAH;
// PerTaskReward is paid per completed work task.
var jobCatalog = []domain.JobPosition{
	{JobID: "courier", Title: "Кур'єр Glovo", DailySalary: decimal.NewFromInt(15), PerTaskReward: decimal.NewFromFloat(0.50), RequiredLevel: 1, Category: domain.JobCategoryService, Icon: "🚲", Difficulty: 20, SpeedFactor: 1},
	{JobID: "cleaner", Title: "Прибиральник", DailySalary: decimal.NewFromInt(20), PerTaskReward: decimal.NewFromFloat(0.75), RequiredLevel: 1, Category: domain.JobCategoryService, Icon: "🧹", Difficulty: 18, SpeedFactor: 1.2},
	{JobID: "cashier", Title: "Касир АТБ", DailySalary: decimal.NewFromInt(25), PerTaskReward: decimal.NewFromFloat(1.00), RequiredLevel: 1, Category: domain.JobCategoryService, Icon: "🏪", Difficulty: 15, SpeedFactor: 1.5},
	{JobID: "waiter", Title: "Офіціант", DailySalary: decimal.NewFromInt(40), PerTaskReward: decimal.NewFromFloat(2.00), RequiredLevel: 1, Category: domain.JobCategoryService, Icon: "☕", Difficulty: 12, SpeedFactor: 2},
	{JobID: "driver", Title: "Водій Таксі", DailySalary: decimal.NewFromInt(50), PerTaskReward: decimal.NewFromFloat(3.50), RequiredLevel: 1, Category: domain.JobCategoryService, Icon: "🚕", Difficulty: 10, SpeedFactor: 2.2},
	{JobID: "copywriter", Title: "Копірайтер", DailySalary: decimal.NewFromInt(70), PerTaskReward: decimal.NewFromFloat(5.00), RequiredLevel: 2, Category: domain.JobCategoryStart, Icon: "✍️", Difficulty: 8, SpeedFactor: 2.5},
	{JobID: "designer", Title: "Графічний Дизайнер", DailySalary: decimal.NewFromInt(100), PerTaskReward: decimal.NewFromFloat(8.00), RequiredLevel: 2, Category: domain.JobCategoryStart, Icon: "🎨", Difficulty: 7, SpeedFactor: 3},
	{JobID: "tester", Title: "QA Тестувальник", DailySalary: decimal.NewFromInt(150), PerTaskReward: decimal.NewFromFloat(12.00), RequiredLevel: 2, Category: domain.JobCategoryTech, Icon: "🐛", Difficulty: 6, SpeedFactor: 3.2},
	{JobID: "manager", Title: "Проект Менеджер", DailySalary: decimal.NewFromInt(200), PerTaskReward: decimal.NewFromFloat(15.00), RequiredLevel: 2, Category: domain.JobCategoryBusiness, Icon: "📊", Difficulty: 5, SpeedFactor: 3.5},
	{JobID: "developer", Title: "Software Engineer", DailySalary: decimal.NewFromInt(300), PerTaskReward: decimal.NewFromFloat(25.00), RequiredLevel: 2, Category: domain.JobCategoryTech, Icon: "💻", Difficulty: 4, SpeedFactor: 4},
	{JobID: "banker", Title: "Банкір", DailySalary: decimal.NewFromInt(450), PerTaskReward: decimal.NewFromFloat(40.00), RequiredLevel: 3, Category: domain.JobCategoryBusiness, Icon: "💼", Difficulty: 3, SpeedFactor: 4.2},
	{JobID: "lawyer", Title: "Адвокат", DailySalary: decimal.NewFromInt(600), PerTaskReward: decimal.NewFromFloat(60.00), RequiredLevel: 3, Category: domain.JobCategoryGov, Icon: "⚖️", Difficulty: 2.5, SpeedFactor: 4.5},
	{JobID: "police", Title: "Начальник Поліції", DailySalary: decimal.NewFromInt(800), PerTaskReward: decimal.NewFromFloat(100.00), RequiredLevel: 3, Category: domain.JobCategoryGov, Icon: "👮", Difficulty: 2, SpeedFactor: 5},
	{JobID: "deputy", Title: "Депутат", DailySalary: decimal.NewFromInt(2000), PerTaskReward: decimal.NewFromFloat(300.00), RequiredLevel: 4, Category: domain.JobCategoryGov, Icon: "🏛️", Difficulty: 1.5, SpeedFactor: 6},
}

// jobService exposes the catalog and drives employment, salary and task
// rewards through the account store and the engine.
type jobService struct {
	BaseService
	userSvc portssvc.UserSvcFacade
	engine  portssvc.TransactionSvcFacade
}

// NewJobService creates the job service.
func NewJobService(userSvc portssvc.UserSvcFacade, engine portssvc.TransactionSvcFacade) portssvc.JobSvcFacade {
	return &jobService{userSvc: userSvc, engine: engine}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) ListJobs(ctx context.Context) []domain.JobPosition {
	out := make([]domain.JobPosition, len(jobCatalog))
	copy(out, jobCatalog)
	return out
}

func (s *jobService) GetJob(ctx context.Context, jobID string) (*domain.JobPosition, error) {
	for i := range jobCatalog {
		if jobCatalog[i].JobID == jobID {
			job := jobCatalog[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", jobID, apperrors.ErrNotFound)
}

func (s *jobService) Apply(ctx context.Context, userID string, jobID string) (*domain.JobPosition, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.userSvc.Employ(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return job, nil
}

// currentJob resolves the user's employment; unemployed users get
// apperrors.ErrValidation.
func (s *jobService) currentJob(ctx context.Context, userID string) (*domain.JobPosition, error) {
	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.JobID == "" {
		return nil, fmt.Errorf("user has no job: %w", apperrors.ErrValidation)
	}
	return s.GetJob(ctx, user.JobID)
}

func (s *jobService) CollectSalary(ctx context.Context, userID string) error {
	job, err := s.currentJob(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.engine.CollectDailySalary(ctx, userID, job.DailySalary); err != nil {
		return err
	}
	s.LogInfo(ctx, "Daily salary paid", slog.String("user_id", userID), slog.String("job_id", job.JobID))
	return nil
}

func (s *jobService) CompleteTask(ctx context.Context, userID string, taskLabel string) error {
	job, err := s.currentJob(ctx, userID)
	if err != nil {
		return err
	}
	if taskLabel == "" {
		taskLabel = fmt.Sprintf("Task reward: %s", job.Title)
	}
	return s.engine.AwardTaskReward(ctx, userID, job.PerTaskReward, taskLabel)
}
