package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
)

// breakerSettings abre o circuito após 5 falhas seguidas e tenta de novo depois de 30s.
// Linhas inválidas são erro de dado, não do banco, e não contam como falha.
func breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, dataset.ErrMalformedRow)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("repository: estado do circuit breaker alterado")
		},
	}
}
