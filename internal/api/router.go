package api

import (
	"net/http"

	"github.com/endoclin/admin/internal/auth"
	"github.com/gin-gonic/gin"
)

func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(app.Logger()))
	r.SetHTMLTemplate(LoadTemplates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "endoclin-admin"})
	})

	r.Use(auth.SessionMiddleware(app.Identity(), app.Sessions(), app.Logger()))
	r.GET("/", Home(app))
	r.POST("/login", PostLogin(app))
	r.POST("/logout", PostLogout(app))

	api := r.Group("/api")
	api.GET("/session", GetSession(app))
	api.POST("/auth/login", APILogin(app))
	api.POST("/auth/logout", APILogout(app))

	profs := api.Group("/profissionais", auth.RequireAuth())
	profs.GET("", GetProfessionals(app))
	profs.PUT("/:id/config", PutDurations(app))
	profs.POST("/:id/tipos", PostAttendanceType(app))
	profs.PATCH("/:id/tipos/:index", PatchAttendanceType(app))
	profs.DELETE("/:id/tipos/:index", DeleteAttendanceType(app))
	return r
}
