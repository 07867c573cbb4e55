package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartshop-insights/internal/config"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre a conexão e tenta o ping com backoff exponencial,
// até cfg.ConnectMaxAttempts tentativas.
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		return db.PingContext(ctx)
	}

	notify := func(err error, wait time.Duration) {
		logrus.WithError(err).WithField("retry_in", wait.String()).Warn("postgres: ping falhou, tentando novamente")
	}

	err = backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx), notify)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
