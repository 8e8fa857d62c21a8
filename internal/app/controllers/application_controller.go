package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/app/services"
	"github.com/yigit/scholarhub/internal/middleware"
)

// ApplicationController handles application-related operations
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Apply handles a student's application to a scholarship
// @Summary Apply for a scholarship
// @Description Files an application for the calling student with status pending
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Scholarship to apply for"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not a student"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), userID, req.ScholarshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// GetMyApplications retrieves the calling student's applications
// @Summary Get my applications
// @Description Retrieves all applications of the calling student with each scholarship joined; the scholarship is null when it has been deleted since
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/my-applications [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	applications, err := c.applicationService.ListByStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// GetApplicationsForScholarship retrieves all applications for a scholarship
// @Summary Get applications for a scholarship
// @Description Retrieves every application for a scholarship with the student's name and email joined in
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/scholarship/{id} [get]
func (c *ApplicationController) GetApplicationsForScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	applications, err := c.applicationService.ListByScholarship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// UpdateApplicationStatus sets the status of an application
// @Summary Update application status
// @Description Moves an application to pending, approved or rejected; any status is reachable from any other
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}
