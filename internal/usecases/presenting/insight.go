package presenting

import (
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

// ScoreInsight sugere campanha para a recomendação de maior score.
// recs já deve estar ordenado por SelectRecommendations.
func ScoreInsight(recs []domain.RecommendationRow) domain.Insight {
	if len(recs) == 0 {
		return domain.Insight{
			Strategy: domain.InsightByScore,
			Message:  domain.WaitingForDataMessage,
		}
	}

	top := recs[0]
	return domain.Insight{
		Strategy: domain.InsightByScore,
		Message:  domain.TopItemMessage(top.ItemID, top.CategoryID),
		ItemID:   top.ItemID,
		Category: top.CategoryID,
	}
}

// ThresholdInsight classifica a média prevista em três faixas.
// Sem pontos não há mensagem: ok é falso e a seção deve ser pulada.
func ThresholdInsight(points []domain.ForecastRow, thresholds domain.Thresholds) (domain.Insight, bool) {
	if len(points) == 0 {
		return domain.Insight{}, false
	}

	mean := domain.NewForecastSeries(points).Mean
	band := thresholds.Classify(mean)

	return domain.Insight{
		Strategy: domain.InsightByThreshold,
		Message:  domain.BandMessage(band, mean),
		Band:     band,
		Mean:     &mean,
	}, true
}
