package api

import (
	"net/http"

	"tourbook/internal/domain/user"
	reqdto "tourbook/internal/handler/dto/request"
	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/handler/httperr"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityHandler struct {
	activityCommands commands.ActivityCommands
	activityQueries  queries.ActivityQueries
}

func NewActivityHandler(activityCommands commands.ActivityCommands, activityQueries queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{
		activityCommands: activityCommands,
		activityQueries:  activityQueries,
	}
}

// @Summary List activities
// @Description List bookable activities; admins may include inactive ones
// @Tags activities
// @Produce json
// @Param include_inactive query bool false "Include deactivated activities (admin only)"
// @Success 200 {array} resdto.ActivityResponse
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	includeInactive := false
	if c.Query("include_inactive") == "true" {
		if role, ok := middleware.GetUserRole(c); ok && role == user.RoleAdmin {
			includeInactive = true
		}
	}

	views, err := h.activityQueries.List(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityViews(views))
}

// @Summary Get activity
// @Description Get activity by slug
// @Tags activities
// @Produce json
// @Param slug path string true "Activity slug"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 404 {object} map[string]string
// @Router /activities/{slug} [get]
func (h *ActivityHandler) GetActivityBySlug(c *gin.Context) {
	view, err := h.activityQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Activity not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityView(view))
}

// @Summary Create activity
// @Description Create a new bookable activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateActivityRequest true "Activity request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req reqdto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request format",
		})
		return
	}

	id, err := h.activityCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{
				"message": "Activity slug already exists",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid activity data",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update activity
// @Description Replace an activity's attributes
// @Tags activities
// @Accept json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param request body reqdto.UpdateActivityRequest true "Activity request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid activity ID format",
		})
		return
	}

	var req reqdto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request format",
		})
		return
	}

	if err := h.activityCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Activity not found",
			})
		case errs.Is(err, commands.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{
				"message": "Activity slug already exists",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid activity data",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate activity
// @Description Soft-delete an activity; existing bookings keep referencing it
// @Tags activities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeactivateActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid activity ID format",
		})
		return
	}

	if err := h.activityCommands.Deactivate(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Activity not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
