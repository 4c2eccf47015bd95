package auth

import (
	"github.com/finboard/finboard/internal/auth/repository"
	"github.com/finboard/finboard/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
