package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/internal/usecases/business"
	"github.com/vfg2006/marketmate-api/pkg/apiErrors"
)

// SaveBusinessProfile valida e grava o perfil do negócio vindo do intake
func SaveBusinessProfile(service business.ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveBusinessProfile")

		var profile domain.BusinessProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.SaveProfile(&profile)
		if err != nil {
			var missingErr *business.MissingFieldError
			if errors.As(err, &missingErr) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", map[string]any{
					"fields": missingErr.Fields,
				})
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar perfil do negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	}
}

// GetBusinessProfile busca o perfil do negócio; ausência devolve corpo nulo
func GetBusinessProfile(service business.ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetBusinessProfile")

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		profile, err := service.GetProfile(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar perfil do negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	}
}
