package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/internal/usecases/scoring"
	"github.com/vfg2006/marketmate-api/pkg/apiErrors"
)

// ScoreProfile avalia a qualidade do perfil de negócio enviado e devolve o
// score com análise e recomendações
func ScoreProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile domain.BusinessProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result := scoring.ScoreProfile(&profile)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
