package service

import (
	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/store"
)

type Services struct {
	CredentialService CredentialService
	IdentityResolver  IdentityResolver
	CatalogResolver   CatalogResolver
	CustodyLedger     CustodyLedger
	SessionManager    SessionManager
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, titleLookup adapter.TitleLookup, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CredentialService: NewCredentialValidationService().Wrap(
			NewCredentialService(storages.IdentityRepository, cfg.App, logger),
		),
		IdentityResolver: NewIdentityResolver(storages.IdentityRepository, cfg.App, logger),
		CatalogResolver:  NewCatalogResolver(storages.CatalogRepository, storages.TitleCache, titleLookup, cfg.App, logger),
		CustodyLedger:    NewCustodyLedger(storages.CustodyRepository, cfg.App, logger),
		SessionManager:   NewSessionManager(cfg.App, logger),
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   appInfoService,
	}, nil
}
