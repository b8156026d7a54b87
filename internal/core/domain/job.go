package domain

import "github.com/shopspring/decimal"

// JobCategory groups positions in the static catalog.
type JobCategory string

const (
	JobCategoryStart    JobCategory = "Start"
	JobCategoryBusiness JobCategory = "Business"
	JobCategoryGov      JobCategory = "Gov"
	JobCategoryTech     JobCategory = "Tech"
	JobCategoryService  JobCategory = "Service"
)

// JobPosition is static catalog data, never mutated at runtime.
// DailySalary and PerTaskReward feed the transaction engine; Difficulty and
// SpeedFactor only parameterize the mini-game presentation and are carried
// as opaque metadata for the UI.
type JobPosition struct {
	JobID         string          `json:"jobID"`
	Title         string          `json:"title"`
	DailySalary   decimal.Decimal `json:"dailySalary"`
	PerTaskReward decimal.Decimal `json:"perTaskReward"`
	RequiredLevel int             `json:"requiredLevel"`
	Category      JobCategory     `json:"category"`
	Icon          string          `json:"icon"`
	Difficulty    float64         `json:"difficulty"`
	SpeedFactor   float64         `json:"speedFactor"`
}
