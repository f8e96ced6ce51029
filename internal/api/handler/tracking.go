package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/internal/config"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/internal/usecases/tracking"
	"github.com/vfg2006/marketmate-api/pkg/apiErrors"
)

// VisitorResponse é a resposta da resolução de identidade do visitante
type VisitorResponse struct {
	VisitorID string `json:"visitorId"`
	IsNew     bool   `json:"isNew"`
}

// GetOrCreateVisitor resolve a identidade anônima do visitante via cookie.
// Chamadas repetidas com o mesmo cookie devolvem sempre o mesmo id.
func GetOrCreateVisitor(service tracking.Tracker, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing := ""
		if cookie, err := r.Cookie(cfg.Tracking.VisitorCookieName); err == nil {
			existing = cookie.Value
		}

		visitorID, isNew := service.GetOrCreateVisitorID(existing)

		if isNew {
			http.SetCookie(w, &http.Cookie{
				Name:     cfg.Tracking.VisitorCookieName,
				Value:    visitorID,
				Path:     "/",
				Expires:  time.Now().AddDate(0, 0, cfg.Tracking.VisitorCookieTTLDays),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(VisitorResponse{
			VisitorID: visitorID,
			IsNew:     isNew,
		})
	}
}

// RecordPageView registra uma visualização de página enviada pelo beacon
func RecordPageView(service tracking.Tracker, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event domain.VisitorEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// O beacon pode omitir o id quando o cookie de identidade existe
		if event.VisitorID == "" {
			if cookie, err := r.Cookie(cfg.Tracking.VisitorCookieName); err == nil {
				event.VisitorID = cookie.Value
			}
		}

		if event.UserAgent == "" {
			event.UserAgent = r.UserAgent()
		}

		result, err := service.RecordPageView(&event)
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// RecordAction registra uma interação do visitante com a página
func RecordAction(service tracking.Tracker, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event domain.ActionEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if event.VisitorID == "" {
			if cookie, err := r.Cookie(cfg.Tracking.VisitorCookieName); err == nil {
				event.VisitorID = cookie.Value
			}
		}

		result, err := service.RecordAction(&event)
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// handleTrackingError mapeia erros de tracking para respostas da API
func handleTrackingError(w http.ResponseWriter, err error) {
	var missingErr *tracking.MissingFieldError
	if errors.As(err, &missingErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", map[string]any{
			"fields": missingErr.Fields,
		})
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar evento", nil)
}
