package invoice

import (
	"github.com/finboard/finboard/internal/invoice/repository"
	"github.com/finboard/finboard/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
