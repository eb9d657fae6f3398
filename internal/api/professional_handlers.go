package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/endoclin/admin/internal/service"
	"github.com/gin-gonic/gin"
)

// GetProfessionals returns the display name -> configuration map of active
// professionals. Backend failures produce an empty map.
func GetProfessionals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		configs := app.Professionals().LoadConfigs(c.Request.Context())
		HandleSuccess(c, app.Logger(), configs, map[string]any{"count": len(configs)})
	}
}

func PutDurations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.DurationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		cfg, err := app.Professionals().UpdateDurations(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to update durations")
			return
		}
		HandleSuccess(c, app.Logger(), cfg, nil)
	}
}

func PostAttendanceType(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := app.Professionals().AddAttendanceType(c.Request.Context(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to add attendance type")
			return
		}
		HandleSuccess(c, app.Logger(), cfg, nil)
	}
}

func PatchAttendanceType(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := indexParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid index")
			return
		}
		var req service.AttendanceUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		cfg, err := app.Professionals().UpdateAttendanceType(c.Request.Context(), c.Param("id"), index, req)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to update attendance type")
			return
		}
		HandleSuccess(c, app.Logger(), cfg, nil)
	}
}

func DeleteAttendanceType(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := indexParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid index")
			return
		}
		cfg, err := app.Professionals().RemoveAttendanceType(c.Request.Context(), c.Param("id"), index)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to remove attendance type")
			return
		}
		HandleSuccess(c, app.Logger(), cfg, nil)
	}
}

func indexParam(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, fmt.Errorf("index %q is not a number", c.Param("index"))
	}
	return index, nil
}
