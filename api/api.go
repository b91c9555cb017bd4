package api

import (
	"fmt"

	"portfoliotracker/internal/app"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	DashboardHandler   *app.DashboardHandler
	DashboardService   service.DashboardService
	ExportService      service.ExportService
	CategoryRepository repository.CategoryRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliotracker"})
	})
	router.GET("/dashboard", m.dashboard)
	router.POST("/dashboard/reload", m.reloadDashboard)
	router.GET("/rebalance", m.rebalance)
	router.GET("/snapshots/:id/composite", m.compositeSnapshot)
	router.GET("/snapshots/:id/export", m.exportComposite)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
