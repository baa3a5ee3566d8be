package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/studycoach/backend/internal/config"
)

// tokenLifetime is long-lived on purpose: the mobile app registers a device
// once and keeps its token.
const tokenLifetime = 90 * 24 * time.Hour

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register handles POST /auth/register: it issues a token for a fresh device
// id. There are no user accounts; a device is the identity.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	deviceID := uuid.NewString()
	token, err := GenerateJWT(deviceID, "device", tokenLifetime)
	if err != nil {
		log.WithError(err).Error("Failed to issue device token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithField("device_id", deviceID).Info("Registered new device")

	config.JSON(w, http.StatusCreated, map[string]string{
		"device_id": deviceID,
		"token":     token,
	})
}
