package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/internal/usecases/leads"
	"github.com/vfg2006/marketmate-api/pkg/apiErrors"
)

// ListLeads serve a listagem filtrada, ordenada e paginada de leads do negócio
func ListLeads(service leads.LeadLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLeads")

		query := r.URL.Query()

		businessID := query.Get("businessId")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		filters := &domain.LeadFilters{
			Source: query.Get("source"),
			Status: query.Get("status"),
			Search: query.Get("search"),
		}

		sortBy := &domain.LeadSort{
			Field:     query.Get("sortBy"),
			Ascending: query.Get("order") == "asc",
		}

		page := parseIntParam(query.Get("page"), 1)
		limit := parseIntParam(query.Get("limit"), leads.DefaultPageSize)

		response, err := service.ListLeads(businessID, filters, sortBy, page, limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar leads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// parseIntParam converte o parâmetro de query, caindo no default quando
// ausente ou inválido
func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}

	return parsed
}
