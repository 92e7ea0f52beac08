package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/requestid"
	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
	"github.com/skillmap-ufvjm/skillmap-web/internal/web"
	"github.com/skillmap-ufvjm/skillmap-web/internal/web/filters"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	Backend       *backend.Client
	Sessions      *session.Store
	Redis         *redis.Client
	CookieName    string
	SessionTTL    time.Duration
	CORSOrigins   []string
	TemplatesGlob string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())

	corsCfg := cors.DefaultConfig()
	if len(dep.CORSOrigins) == 1 && dep.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.CORSOrigins
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	r.Use(cors.New(corsCfg))

	r.SetFuncMap(filters.FuncMap())
	if dep.TemplatesGlob != "" {
		r.LoadHTMLGlob(dep.TemplatesGlob)
	}

	healthHandler := web.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	h := web.New(dep.Backend, dep.Sessions, web.Options{
		CookieName: dep.CookieName,
		SessionTTL: dep.SessionTTL,
	})
	h.Register(r)

	return r
}
