package newrelic

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/openride/marketplace/internal/pkg/logger"
	"github.com/openride/marketplace/internal/pkg/models"
)

const txnContextKey = "nr_txn"

// InitNewRelic initializes the New Relic application. Returns nil when
// instrumentation is disabled; all helpers tolerate a nil transaction.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic", logger.Err(err))
		return nil
	}

	return app
}

// Middleware starts a transaction per request and stores it on the context
func Middleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if app == nil {
				return next(c)
			}

			txn := app.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			c.Set(txnContextKey, txn)
			c.SetRequest(c.Request().WithContext(newrelic.NewContext(c.Request().Context(), txn)))

			return next(c)
		}
	}
}

// FromEchoContext returns the transaction stored on the echo context, if any
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	if txn, ok := c.Get(txnContextKey).(*newrelic.Transaction); ok {
		return txn
	}
	return nil
}

// SetTransactionName renames the transaction
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// NoticeTransactionError records an error against the transaction
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}
