package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-exchange/internal/logger"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/services"
	"github.com/denmor86/ya-exchange/internal/validators"
)

// GetCourseHandler - текущий курс токена
func GetCourseHandler(s services.SettingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		course, err := s.GetCourse(r.Context())
		if err != nil {
			logger.Error("Failed to get course", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
			return
		}
		WriteJSON(w, http.StatusOK, models.CourseResponse{Course: course.InexactFloat64()})
	})
}

// UpdateCourseHandler - смена курса администратором
func UpdateCourseHandler(s services.SettingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.CourseRequest
		if !decodeRequest(w, r, &request, validators.Messages{"course": "Invalid course"}) {
			return
		}

		course, err := s.SetCourse(r.Context(), request.Course)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCourse) {
				WriteError(w, http.StatusBadRequest, "Invalid course")
				return
			}
			logger.Error("Failed to update course", "error", err)
			WriteError(w, http.StatusInternalServerError, MessageServerError)
			return
		}
		WriteJSON(w, http.StatusOK, models.CourseUpdateResponse{Success: true, Course: course.InexactFloat64()})
	})
}
