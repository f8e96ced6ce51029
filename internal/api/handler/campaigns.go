package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/internal/usecases/budgeting"
	"github.com/vfg2006/marketmate-api/pkg/apiErrors"
)

// AllocateBudgetRequest é o corpo da alocação de verba na publicação
type AllocateBudgetRequest struct {
	BusinessID       string   `json:"businessId"`
	TotalDailyBudget float64  `json:"totalDailyBudget"`
	DurationDays     int      `json:"durationDays"`
	Channels         []string `json:"channels"`
	Objective        string   `json:"objective"`
	Targeting        string   `json:"targeting"`
}

// AllocateBudget distribui a verba entre os canais selecionados e persiste o
// lote de campanhas resultante
func AllocateBudget(service budgeting.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AllocateBudget")

		var req AllocateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaigns, err := service.Publish(req.BusinessID, &budgeting.AllocationRequest{
			TotalDailyBudget: req.TotalDailyBudget,
			DurationDays:     req.DurationDays,
			Channels:         req.Channels,
			Objective:        req.Objective,
			Targeting:        req.Targeting,
		})
		if err != nil {
			if errors.Is(err, budgeting.ErrNoChannelsSelected) {
				apiErrors.WriteError(w, apiErrors.ErrNoChannelsSelected, "Nenhum canal de publicação selecionado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao alocar verba", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"campaigns": campaigns,
		})
	}
}

// ListCampaigns lista as campanhas criadas para um negócio
func ListCampaigns(service budgeting.Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCampaigns")

		businessID := r.URL.Query().Get("businessId")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		campaigns, err := service.ListCampaigns(businessID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"campaigns": campaigns,
		})
	}
}
