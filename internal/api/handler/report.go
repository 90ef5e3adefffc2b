package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/internal/usecases/reporting"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

// GetReport retorna o relatório mensal da sessão (?month=1&year=2024[&convert=true])
func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		query := r.URL.Query()
		monthParam := query.Get("month")
		yearParam := query.Get("year")

		if monthParam == "" || yearParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		month, err := strconv.Atoi(monthParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use um número de 1 a 12", nil)
			return
		}

		year, err := strconv.Atoi(yearParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use quatro dígitos (ex: 2024)", nil)
			return
		}

		convert := false
		if convertParam := query.Get("convert"); convertParam != "" {
			convert, err = strconv.ParseBool(convertParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro convert inválido", nil)
				return
			}
		}

		report, err := service.GetReport(r.Context(), sessionID, domain.ReportFilters{
			Month:   month,
			Year:    year,
			Convert: convert,
		})
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"session_id": sessionID,
			"month":      month,
			"year":       year,
		}).Infof("report: relatório gerado com %d registro(s)", len(report.Records))

		writeJSON(w, r, report)
	})
}

// GetExchangeRate expõe a cotação USD-BRL atual; indisponibilidade não é erro
func GetExchangeRate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.GetExchangeRate(r.Context()))
	})
}

// ListMonths retorna a tabela de meses usada no filtro
func ListMonths() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, domain.MonthOptions())
	})
}
