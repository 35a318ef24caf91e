package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/middleware"
	taskHTTP "smart-task-assistant/internal/task/delivery/http"
)

// setupTaskDomain registers the task domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (in cmd/api/main.go so deliveries can share it)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)

	// Registers /api/v1/tasks/rank, /rank/records, /rank/csv
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
