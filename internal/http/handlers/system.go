package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"time"

	intdb "moviebrowser/internal/db"
	"moviebrowser/internal/domain"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck reports whether the movies table is reachable and how many rows it has.
func DBCheck(db func() *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn := db()
		if conn == nil {
			RespondDomainError(c, domain.UnavailableError{Dependency: "database"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ok, err := intdb.HasTable(ctx, conn, intdb.MoviesTable)
		if err != nil {
			RespondDomainError(c, domain.UnavailableError{Dependency: "database", Err: err})
			return
		}
		if !ok {
			RespondDomainError(c, domain.NotFoundError{Resource: "table " + intdb.MoviesTable})
			return
		}

		var count int64
		if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
			RespondDomainError(c, domain.InternalError{Msg: "count movies failed", Err: err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "movies_in_db": count})
	}
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondDomainError(c, domain.UnavailableError{Dependency: "router"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
