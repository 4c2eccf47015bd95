package customer

import (
	"github.com/finboard/finboard/internal/customer/repository"
	"github.com/finboard/finboard/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
