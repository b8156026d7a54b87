package dto

import (
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobResponse defines one catalog position as returned to callers.
type JobResponse struct {
	JobID         string             `json:"jobID"`
	Title         string             `json:"title"`
	DailySalary   decimal.Decimal    `json:"dailySalary"`
	PerTaskReward decimal.Decimal    `json:"perTaskReward"`
	RequiredLevel int                `json:"requiredLevel"`
	Category      domain.JobCategory `json:"category"`
	Icon          string             `json:"icon"`
	Difficulty    float64            `json:"difficulty"`
	SpeedFactor   float64            `json:"speedFactor"`
}

// ToJobResponse converts a domain.JobPosition to its response DTO.
func ToJobResponse(j *domain.JobPosition) JobResponse {
	return JobResponse{
		JobID:         j.JobID,
		Title:         j.Title,
		DailySalary:   j.DailySalary,
		PerTaskReward: j.PerTaskReward,
		RequiredLevel: j.RequiredLevel,
		Category:      j.Category,
		Icon:          j.Icon,
		Difficulty:    j.Difficulty,
		SpeedFactor:   j.SpeedFactor,
	}
}

// ToJobResponses converts the catalog to response DTOs.
func ToJobResponses(jobs []domain.JobPosition) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i := range jobs {
		out[i] = ToJobResponse(&jobs[i])
	}
	return out
}

// CompleteTaskRequest reports one finished mini-game task.
type CompleteTaskRequest struct {
	TaskLabel string `json:"taskLabel" binding:"max=64"`
}
