package api

import (
	"database/sql"

	intconfig "moviebrowser/internal/config"
	"moviebrowser/internal/domain"
	h "moviebrowser/internal/http/handlers"
	"moviebrowser/internal/http/middleware"
	"moviebrowser/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Movies h.MoviePager
	// DB returns the live pool or nil. Defaults to the shared config.DB.
	DB func() *sql.DB
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	if deps.DB == nil {
		deps.DB = func() *sql.DB { return intconfig.DB }
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger := logging.NewLogger("http")
		logger.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		h.RespondDomainError(c, domain.NotFoundError{Resource: "route " + c.Request.Method + " " + c.Request.URL.Path})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck(deps.DB))
		api.GET("/routes", h.Routes)

		api.GET("/movies", h.GetMovies(deps.Movies))
	}

	h.SetRouter(r)
	return r
}
