package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed assets/index.html
var dashboardHTML []byte

// dashboardPage serves the single-page dashboard. All interactivity runs
// client-side against the figure API; the page itself is static.
func (s *Server) dashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardHTML)
}
