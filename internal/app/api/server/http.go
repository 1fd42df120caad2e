package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/docs"
	"github.com/fatflowers/gemcashier/internal/app/api/handlers"
	mw "github.com/fatflowers/gemcashier/internal/app/api/middleware"
	"github.com/fatflowers/gemcashier/internal/app/service/checkout"
	nh "github.com/fatflowers/gemcashier/internal/app/service/notification_handler"
	notificationlog "github.com/fatflowers/gemcashier/internal/app/service/notification_log"
	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/app/service/reconcile"
	"github.com/fatflowers/gemcashier/internal/app/service/statistics"
	"github.com/fatflowers/gemcashier/internal/app/service/verification"
	cfgpkg "github.com/fatflowers/gemcashier/pkg/config"
	metrics "github.com/fatflowers/gemcashier/pkg/metrics"
)

type routeDeps struct {
	fx.In

	Log          *zap.SugaredLogger
	Cfg          *cfgpkg.Config
	Initiator    *checkout.Initiator
	Verification *verification.Service
	NotifHandler *nh.NotificationHandler
	Orders       *order.Service
	Payments     *payment.AdminService
	Logs         notificationlog.Store
	Reconciler   *reconcile.Engine
	Stats        *statistics.Service
}

func newEngine(cfg *cfgpkg.Config) *gin.Engine {
	if cfg.Env != cfgpkg.EnvDev {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Request logger & access log are attached per group in registerRoutes.
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	log := d.Log
	if d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			MetricsList: metrics.BusinessMetrics,
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return "unmatched"
			},
			Logger: log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.RegisterOrderRoutes(pub, d.Initiator, log)
	handlers.RegisterPaymentRoutes(pub.Group("/payments"), d.Initiator, d.Verification, d.NotifHandler, log)

	admin := r.Group("/api/v1/admin")
	admin.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterAdminRoutes(admin, &handlers.AdminDeps{
		Orders:     d.Orders,
		Payments:   d.Payments,
		Logs:       d.Logs,
		Reconciler: d.Reconciler,
		Stats:      d.Stats,
		Log:        log,
	})
}

func runServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("server error", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
