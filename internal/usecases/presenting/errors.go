package presenting

import "errors"

var (
	ErrForecastUnavailable        = errors.New("error loading forecast")
	ErrRecommendationsUnavailable = errors.New("error loading recommendations")
	ErrInsightUnavailable         = errors.New("marketing insights unavailable")
)

const (
	NoForecastMessage        = "No forecast available for this customer."
	NoRecommendationsMessage = "No recommendations found for this customer."
)
