package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/command"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// DashboardGet handles GET /v1/dashboard.
type DashboardGet struct {
	DashboardCmd command.Command[command.Empty, domain.DashboardStats]
	CacheMaxAge  time.Duration
}

func (c DashboardGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := c.DashboardCmd.Execute(ctx, command.Empty{})
	if err != nil {
		writeError(ctx, w, "unable to build dashboard", err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(ctx, w, http.StatusOK, stats)
}
