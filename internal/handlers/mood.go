package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
)

type MoodHandler struct {
	moodService *services.MoodService
}

func NewMoodHandler(moodService *services.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// Options returns the choices of the Log Mood form.
func (h *MoodHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToMoodOptionsDTO(h.moodService.Options()))
}

// CreateMood saves today's mood entry.
func (h *MoodHandler) CreateMood(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	type CreateMoodRequest struct {
		Mood      string `json:"mood" binding:"required,mood"`
		Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
		Trigger   string `json:"trigger" binding:"required,trigger"`
		Note      string `json:"note"`
	}

	var req CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.moodService.LogMood(c.Request.Context(), services.LogMoodInput{
		Username:  username,
		Mood:      models.Mood(req.Mood),
		Intensity: req.Intensity,
		Trigger:   models.Trigger(req.Trigger),
		Note:      req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMood),
			errors.Is(err, services.ErrInvalidTrigger),
			errors.Is(err, services.ErrIntensityOutOfRange),
			errors.Is(err, services.ErrNoteTooLong):
			apierrors.BadRequest(c, err.Error())
		default:
			respondInternal(c, err, "Failed to save mood entry")
		}
		return
	}

	utils.EntriesCreated.WithLabelValues("mood").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Mood entry saved 💛",
		"entry":   dto.ToMoodEntryDTO(*entry),
	})
}

// ListMoods returns the user's mood history, newest first.
func (h *MoodHandler) ListMoods(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	entries, total, err := h.moodService.ListMoods(c.Request.Context(), username, params)
	if err != nil {
		respondInternal(c, err, "Failed to fetch mood entries")
		return
	}

	c.JSON(http.StatusOK, dto.MoodListResponse{
		Entries: dto.ToMoodEntryDTOs(entries),
		Pagination: utils.NewPaginationResponse(params, total),
	})
}
