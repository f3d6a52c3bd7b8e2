package probe

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/bootkit/lifecycle"
)

// Readiness returns a handler for K8s readiness probes. It reports
// ready only once the coordinator's state machine reaches ready, so
// the outer process accepts traffic no earlier.
func Readiness(c *lifecycle.Coordinator) gin.HandlerFunc {
	return func(g *gin.Context) {
		if c.State() == lifecycle.StateReady {
			g.JSON(http.StatusOK, gin.H{
				"status":    "ready",
				"service":   c.Name(),
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		g.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"service":   c.Name(),
			"state":     string(c.State()),
			"pending":   c.Status(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Liveness returns a handler for K8s liveness probes. It simply
// confirms the process is alive and able to serve HTTP.
func Liveness(serviceName string) gin.HandlerFunc {
	return func(g *gin.Context) {
		g.JSON(http.StatusOK, gin.H{
			"status":    "alive",
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Status returns a handler reporting the lifecycle state and the
// pending task ids, regardless of readiness.
func Status(c *lifecycle.Coordinator) gin.HandlerFunc {
	return func(g *gin.Context) {
		g.JSON(http.StatusOK, gin.H{
			"service":   c.Name(),
			"state":     string(c.State()),
			"pending":   c.Status(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// RegisterRoutes mounts the standard probe endpoints on r.
func RegisterRoutes(r gin.IRouter, c *lifecycle.Coordinator) {
	r.GET("/healthz", Liveness(c.Name()))
	r.GET("/readyz", Readiness(c))
	r.GET("/statusz", Status(c))
}
