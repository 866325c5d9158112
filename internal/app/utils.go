package app

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"levelshort/internal/config"
	"levelshort/internal/repository"
)

// SelectRepository - selects the storage for tenant records: database,
// file, or memory.
func SelectRepository(c *config.Config, sugar *zap.SugaredLogger) repository.TenantRepository {
	if c.DBConnection != "" {
		sugar.Infof("try using DB")
		repo, err := repository.NewDBRepository(c.DBConnection)
		if err == nil {
			if err := repo.UpMigrations(); err != nil {
				sugar.Errorf("migrations error: %v", err)
			}
			return repo
		}
		sugar.Errorf("error using DB: %v", err)
	}

	if c.TenantStorageFile != "" {
		sugar.Infof("try using file")
		repo, err := repository.NewFileRepository(c.TenantStorageFile)
		if err == nil {
			return repo
		}
		sugar.Errorf("error using file: %v", err)
	}

	sugar.Infof("using memory")
	return repository.NewMemoryRepository()
}

// CreateServer creates and configures an HTTP server.
func CreateServer(c *config.Config, handler http.Handler, sugar *zap.SugaredLogger) *http.Server {
	addr := c.Addr
	if c.EnableHTTPS {
		addr = "localhost:8443"
		c.Addr = addr
		c.BaseURL = "https://" + addr
	}
	sugar.Infof("Shortener at %s", c.Addr)

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}
