package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Acr0no/fcg-users-app/clients"
	"github.com/Acr0no/fcg-users-app/config"
	"github.com/Acr0no/fcg-users-app/handlers"
	"github.com/Acr0no/fcg-users-app/routes"
	"github.com/Acr0no/fcg-users-app/services"
	"github.com/Acr0no/fcg-users-app/utils/redislog"
	"github.com/Acr0no/fcg-users-app/utils/spinner"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s starting in %s on :%s (backend %s)",
		cfg.AppName, cfg.Env, cfg.HTTPPort, cfg.APIBaseURL)

	// 2) Infrastructure: Redis for the audit trail (optional).
	rdb := config.InitRedis(cfg)
	audit := redislog.New(rdb, cfg.AuditLogKey, 1000, 7*24*time.Hour)
	audit.Info("app boot", map[string]string{
		"env":     cfg.Env,
		"port":    cfg.HTTPPort,
		"backend": cfg.APIBaseURL,
	})

	// 3) Shared collaborators: backend client + busy indicator service.
	api := clients.NewUserClient(cfg.APIBaseURL)
	spin := spinner.New()

	// 4) One listing controller per browser session, evicted when idle.
	sessions := handlers.NewSessionRegistry(func() *services.DashboardService {
		return services.NewDashboardService(api, spin, audit, cfg.PageSize)
	}, cfg.SessionTTLDuration)
	defer sessions.Shutdown()

	// 5) Gin engine and routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	routes.Setup(r, handlers.NewDashboardHandler(sessions, api))

	audit.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		audit.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
