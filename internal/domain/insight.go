package domain

import "fmt"

// InsightStrategy define qual regra gera a mensagem de marketing
type InsightStrategy string

const (
	InsightByScore     InsightStrategy = "score"
	InsightByThreshold InsightStrategy = "threshold"
)

func (s InsightStrategy) Valid() bool {
	return s == InsightByScore || s == InsightByThreshold
}

type EngagementBand string

const (
	EngagementHigh     EngagementBand = "high"
	EngagementModerate EngagementBand = "moderate"
	EngagementLow      EngagementBand = "low"
)

// Thresholds delimita as faixas de engajamento: mean >= High é alto,
// Moderate <= mean < High é moderado e o resto é baixo.
type Thresholds struct {
	High     float64 `json:"high"`
	Moderate float64 `json:"moderate"`
}

var DefaultThresholds = Thresholds{High: 2.0, Moderate: 1.0}

func (t Thresholds) Classify(mean float64) EngagementBand {
	switch {
	case mean >= t.High:
		return EngagementHigh
	case mean >= t.Moderate:
		return EngagementModerate
	default:
		return EngagementLow
	}
}

type Insight struct {
	Strategy InsightStrategy `json:"strategy"`
	Message  string          `json:"message"`
	Band     EngagementBand  `json:"band,omitempty"`
	Mean     *float64        `json:"mean,omitempty"`
	ItemID   string          `json:"item_id,omitempty"`
	Category string          `json:"category_id,omitempty"`
}

const WaitingForDataMessage = "Waiting on user engagement data for marketing suggestions."

func TopItemMessage(itemID, categoryID string) string {
	return fmt.Sprintf("Suggest offering a 10%% discount for Item %s (Category %s) to drive conversions.", itemID, categoryID)
}

func BandMessage(band EngagementBand, mean float64) string {
	switch band {
	case EngagementHigh:
		return fmt.Sprintf("High engagement expected (average %.2f). Promote premium and new arrivals.", mean)
	case EngagementModerate:
		return fmt.Sprintf("Moderate engagement expected (average %.2f). Send personalised reminders to keep interest up.", mean)
	default:
		return fmt.Sprintf("Low engagement expected (average %.2f). Offer a discount to re-activate this customer.", mean)
	}
}
