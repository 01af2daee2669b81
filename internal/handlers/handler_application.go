package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
)

// applicationHandler handles HTTP requests for product applications.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

func newApplicationHandler(as portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{applicationService: as}
}

// registerApplicationRoutes registers product application routes.
func registerApplicationRoutes(rg *gin.RouterGroup, as portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(as)

	applications := rg.Group("/solicitudes")
	{
		applications.POST("", h.createApplication)
		applications.GET("/:id", h.getApplication)
		applications.PATCH("/:id/status", middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RoleAnalyst)), h.transitionApplication)
	}
}

// createApplication godoc
// @Summary Create a product application
// @Description Creates an application in INITIATED status with one or more product lines and a generated folio.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param application body dto.CreateApplicationRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /solicitudes [post]
func (h *applicationHandler) createApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	application, err := h.applicationService.CreateApplication(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Application submitted", slog.String("folio", application.Folio))
	c.JSON(http.StatusCreated, dto.OK("Application created", dto.ToApplicationResponse(application)))
}

// getApplication godoc
// @Summary Get a product application
// @Description Retrieves an application with its product lines in requested order.
// @Tags solicitudes
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /solicitudes/{id} [get]
func (h *applicationHandler) getApplication(c *gin.Context) {
	application, err := h.applicationService.GetApplicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Application retrieved", dto.ToApplicationResponse(application)))
}

// transitionApplication godoc
// @Summary Transition an application
// @Description Moves the application to a new workflow status. Illegal transitions are rejected with 409. Analyst or admin.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param transition body dto.TransitionApplicationRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /solicitudes/{id}/status [patch]
func (h *applicationHandler) transitionApplication(c *gin.Context) {
	var req dto.TransitionApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	application, err := h.applicationService.TransitionApplication(c.Request.Context(), c.Param("id"), domain.ApplicationStatus(req.Status), req.Observations, updaterUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Application status updated", dto.ToApplicationResponse(application)))
}
