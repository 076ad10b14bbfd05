// Package modkit provides module wiring and core deps
package modkit

import (
	"baseconv/internal/modkit/repokit"
	"baseconv/internal/platform/config"
	"baseconv/internal/platform/logger"
	"baseconv/internal/platform/store"
)

// Deps holds the shared dependencies handed to every module
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
