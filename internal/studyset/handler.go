package studyset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studycoach/backend/internal/auth"
	"github.com/studycoach/backend/internal/config"
	"gorm.io/datatypes"
)

type Handler struct {
	service StudySetService
}

func NewHandler(s StudySetService) *Handler {
	return &Handler{service: s}
}

type createSetRequest struct {
	Kind  string            `json:"kind"`
	Title string            `json:"title"`
	Items []json.RawMessage `json:"items"`
}

func (h *Handler) CreateSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload createSetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(payload.Items) == 0 {
		http.Error(w, "study set must contain at least one item", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	set := &StudySet{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   payload.Kind,
		Title:  payload.Title,
	}

	items := make([]*StudyItem, 0, len(payload.Items))
	for _, raw := range payload.Items {
		items = append(items, &StudyItem{
			ID:      uuid.New(),
			Payload: datatypes.JSON(raw),
		})
	}

	if err := h.service.CreateSetWithItems(r.Context(), set, items); err != nil {
		if errors.Is(err, ErrInvalidKind) {
			http.Error(w, "invalid kind", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to save study set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"set":   set,
		"items": items,
	})
}

func (h *Handler) GetSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setID := chi.URLParam(r, "id")
	if setID == "" {
		http.Error(w, "set id required", http.StatusBadRequest)
		return
	}

	dto, err := h.service.GetSetWithItems(r.Context(), setID)
	if err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "study set not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch study set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sets, err := h.service.ListSetsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list study sets")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setID := chi.URLParam(r, "id")
	if setID == "" {
		http.Error(w, "set id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSet(r.Context(), setID); err != nil {
		log.WithError(err).Error("Failed to delete study set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "study set deleted successfully",
	})
}
