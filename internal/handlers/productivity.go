package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
)

type ProductivityHandler struct {
	productivityService *services.ProductivityService
}

func NewProductivityHandler(productivityService *services.ProductivityService) *ProductivityHandler {
	return &ProductivityHandler{
		productivityService: productivityService,
	}
}

func (h *ProductivityHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToProductivityOptionsDTO(h.productivityService.Options()))
}

// CreateProductivity saves today's study and energy check-in.
func (h *ProductivityHandler) CreateProductivity(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	// StudyHours is a pointer so that zero hours still passes "required".
	type CreateProductivityRequest struct {
		StudyHours  *int   `json:"study_hours" binding:"required,min=0,max=12"`
		EnergyLevel int    `json:"energy_level" binding:"required,min=1,max=10"`
		Comment     string `json:"comment"`
	}

	var req CreateProductivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.productivityService.LogProductivity(c.Request.Context(), services.LogProductivityInput{
		Username:    username,
		StudyHours:  *req.StudyHours,
		EnergyLevel: req.EnergyLevel,
		Comment:     req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudyHoursOutOfRange),
			errors.Is(err, services.ErrEnergyLevelOutOfRange),
			errors.Is(err, services.ErrCommentTooLong):
			apierrors.BadRequest(c, err.Error())
		default:
			respondInternal(c, err, "Failed to save productivity entry")
		}
		return
	}

	utils.EntriesCreated.WithLabelValues("productivity").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Productivity saved 🎉",
		"entry":   dto.ToProductivityEntryDTO(*entry),
	})
}

func (h *ProductivityHandler) ListProductivity(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	entries, total, err := h.productivityService.ListProductivity(c.Request.Context(), username, params)
	if err != nil {
		respondInternal(c, err, "Failed to fetch productivity entries")
		return
	}

	c.JSON(http.StatusOK, dto.ProductivityListResponse{
		Entries: dto.ToProductivityEntryDTOs(entries),
		Pagination: utils.NewPaginationResponse(params, total),
	})
}
