package providers

import (
	"github.com/samber/do/v2"

	"github.com/trailbookapp/trailbook/internal/logger"
	"github.com/trailbookapp/trailbook/internal/service"
)

// ProvideAuthService provides the local sign-in service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, log.Logger), nil
}
