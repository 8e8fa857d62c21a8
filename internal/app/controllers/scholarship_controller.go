package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/app/services"
	"github.com/yigit/scholarhub/internal/middleware"
)

// ScholarshipController handles scholarship-related operations
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
	}
}

// parseIDParam parses the :id path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateScholarship handles scholarship creation
// @Summary Create a new scholarship
// @Description Creates a new scholarship posting owned by the calling admin
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScholarshipRequest true "Scholarship information"
// @Success 201 {object} dto.APIResponse{data=models.Scholarship} "Scholarship created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships [post]
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	var req dto.CreateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship data")
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

	scholarship, err := c.scholarshipService.Create(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// GetAllScholarships retrieves all scholarships
// @Summary Get all scholarships
// @Description Retrieves every scholarship with the creator's name and email joined in
// @Tags scholarships
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Scholarship} "Scholarships retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships [get]
func (c *ScholarshipController) GetAllScholarships(ctx *gin.Context) {
	scholarships, err := c.scholarshipService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarships,
		Timestamp: time.Now(),
	})
}

// GetScholarshipByID retrieves a scholarship by ID
// @Summary Get scholarship details
// @Description Retrieves a single scholarship by its ID
// @Tags scholarships
// @Accept json
// @Produce json
// @Param id path int true "Scholarship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Scholarship} "Scholarship retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship ID"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/{id} [get]
func (c *ScholarshipController) GetScholarshipByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	scholarship, err := c.scholarshipService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// UpdateScholarship updates an existing scholarship
// @Summary Update a scholarship
// @Description Partially updates a scholarship; only title, description, eligibility, deadline and amount are mutable
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID" Format(int64) minimum(1)
// @Param request body dto.UpdateScholarshipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Scholarship} "Scholarship updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/{id} [put]
func (c *ScholarshipController) UpdateScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scholarship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scholarship, err := c.scholarshipService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// DeleteScholarship deletes a scholarship
// @Summary Delete a scholarship
// @Description Deletes a scholarship; existing applications referencing it are kept
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Scholarship deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/{id} [delete]
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.scholarshipService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Scholarship deleted successfully"},
		Timestamp: time.Now(),
	})
}
