package api

import (
	"errors"
	"net/http"

	"github.com/endoclin/admin/internal/auth"
	"github.com/endoclin/admin/internal/service"
	"github.com/endoclin/admin/internal/storage"
	"github.com/gin-gonic/gin"
)

// Home renders the login page or the management page depending on the
// persisted session flag. The session is not revalidated remotely.
func Home(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.CurrentSession(c)
		if !sess.IsAuthenticated() {
			c.HTML(http.StatusOK, "login.html", loginPage{})
			return
		}
		ctx := storage.ContextWithToken(c.Request.Context(), sess.Token())
		c.HTML(http.StatusOK, "admin.html", adminPage{Professionals: app.Professionals().LoadActive(ctx)})
	}
}

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.CurrentSession(c)
		var req service.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			app.Logger().Warnf("[request_id=%s] unreadable login form: %v", c.GetString("request_id"), err)
		}

		if err := app.Auth().Login(c.Request.Context(), sess, req); err != nil {
			status, msg := loginFailure(err)
			app.Logger().Warnf("[request_id=%s] login failed: %v", c.GetString("request_id"), err)
			c.HTML(status, "login.html", loginPage{Username: req.Username, Error: msg})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func PostLogout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Auth().Logout(c.Request.Context(), auth.CurrentSession(c)); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to clear session: %v", c.GetString("request_id"), err)
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func GetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), gin.H{"authenticated": auth.CurrentSession(c).IsAuthenticated()}, nil)
	}
}

func APILogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := app.Auth().Login(c.Request.Context(), auth.CurrentSession(c), req); err != nil {
			status, msg := loginFailure(err)
			HandleError(c, app.Logger(), errors.New(msg), status, "")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"authenticated": true}, nil)
	}
}

func APILogout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Auth().Logout(c.Request.Context(), auth.CurrentSession(c)); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to clear session: %v", c.GetString("request_id"), err)
		}
		HandleSuccess(c, app.Logger(), gin.H{"authenticated": false}, nil)
	}
}

// loginFailure picks the status and the text shown on the login form.
func loginFailure(err error) (int, string) {
	var loginErr *auth.LoginError
	switch {
	case errors.As(err, &loginErr):
		switch loginErr.Status {
		case http.StatusBadRequest, http.StatusBadGateway:
			return loginErr.Status, loginErr.Message
		}
		return http.StatusUnauthorized, loginErr.Message
	case errors.Is(err, service.ErrLoginInProgress):
		return http.StatusConflict, "Login já em andamento"
	}
	return http.StatusInternalServerError, auth.FallbackLoginError
}
