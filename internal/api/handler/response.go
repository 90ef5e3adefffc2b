package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeUseCaseError traduz o erro do caso de uso para o envelope da API
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrors.FromError(err)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error("erro interno ao processar requisição")
		apiErrors.WriteError(w, apiErr.Code, "Erro interno do servidor", nil)
		return
	}
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
