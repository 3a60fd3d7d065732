package identity

import (
	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"github.com/saransh1220/artistly/internal/modules/identity/application"
	"github.com/saransh1220/artistly/internal/modules/identity/infrastructure/jwt"
	identity_http "github.com/saransh1220/artistly/internal/modules/identity/interfaces/http"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"go.uber.org/zap"
)

// Module wires the session and identity store
type Module struct {
	service *application.Service
	handler *identity_http.IdentityHandler
}

func NewModule(store storagedomain.Store, bus busdomain.Notifier, cfg config.Config, logger *zap.Logger) *Module {
	tokens := jwt.NewProvider(cfg.JWT.Secret, cfg.JWT.Expiry)
	service := application.NewService(store, bus, tokens, application.Options{
		LoginDelay: cfg.Identity.LoginDelay,
		BcryptCost: cfg.Identity.BcryptCost,
	}, logger)

	return &Module{
		service: service,
		handler: identity_http.NewIdentityHandler(service, logger),
	}
}

func (m *Module) Service() *application.Service {
	return m.service
}

func (m *Module) HTTPHandler() *identity_http.IdentityHandler {
	return m.handler
}
