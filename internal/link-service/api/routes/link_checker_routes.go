package routes

import (
	"VCS_Link_Checker/internal/link-service/api/handler"
	"VCS_Link_Checker/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const actionAPIPrefix = "/api/3/action"

func AddLinkCheckerRoutes(r *gin.Engine, handler handler.LinkCheckerHandler, m middleware.AuthMiddleware) {
	actionRoutes := r.Group(actionAPIPrefix, m.ExtractIdentity())
	actionRoutes.POST("/get_resources_to_check", m.RequireAuthorizedUser(), handler.GetResourcesToCheck())
	actionRoutes.POST("/upsert", m.RequireAuthorizedUser(), handler.Upsert())
	actionRoutes.GET("/get", handler.GetResult())
	actionRoutes.GET("/broken_links_by_organization", handler.BrokenLinksByOrganization())
	actionRoutes.GET("/broken_links_by_email", m.RequireSysadmin(), handler.BrokenLinksByEmail())
}

func AddOperationalRoutes(r *gin.Engine, handler handler.LinkCheckerHandler, gatherer prometheus.Gatherer) {
	r.GET("/health", handler.Health())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
