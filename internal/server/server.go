package server

import (
	"context"
	"net/http"
	"time"

	"github.com/finboard/finboard/internal/auth"
	authdomain "github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/internal/auth/session"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/customer"
	customerdomain "github.com/finboard/finboard/internal/customer/domain"
	"github.com/finboard/finboard/internal/invoice"
	invoicedomain "github.com/finboard/finboard/internal/invoice/domain"
	"github.com/finboard/finboard/internal/observability"
	obslogger "github.com/finboard/finboard/internal/observability/logger"
	obsmetrics "github.com/finboard/finboard/internal/observability/metrics"
	"github.com/finboard/finboard/internal/viewcache"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	auth.Module,
	session.Module,
	customer.Module,
	invoice.Module,
	viewcache.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	authsvc     authdomain.Service
	sessions    *session.Manager
	customerSvc customerdomain.Service
	invoiceSvc  invoicedomain.Service
	views       viewcache.Store
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	Authsvc     authdomain.Service
	Sessions    *session.Manager
	CustomerSvc customerdomain.Service
	InvoiceSvc  invoicedomain.Service
	Views       viewcache.Store
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		authsvc:     p.Authsvc,
		sessions:    p.Sessions,
		customerSvc: p.CustomerSvc,
		invoiceSvc:  p.InvoiceSvc,
		views:       p.Views,
	}
}

// RegisterRoutes wires the public entry points and the gated dashboard area.
func (s *Server) RegisterRoutes() {
	s.engine.POST("/login", s.Gate(), s.Login)
	s.engine.POST("/logout", s.Logout)

	dashboard := s.engine.Group("/", s.Gate())
	dashboard.GET("/dashboard", s.Overview)
	dashboard.GET("/dashboard/customers", s.ListCustomers)
	dashboard.GET("/dashboard/invoices", s.ListInvoices)
	dashboard.GET("/dashboard/invoices/:id", s.GetInvoiceByID)
	dashboard.POST("/dashboard/invoices", s.CreateInvoice)
	dashboard.POST("/dashboard/invoices/:id", s.UpdateInvoice)
	dashboard.POST("/dashboard/invoices/:id/delete", s.DeleteInvoice)
}
