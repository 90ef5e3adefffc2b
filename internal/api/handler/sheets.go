package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/clash-paysheet/internal/usecases/uploading"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

const uploadFormField = "file"

// UploadSheet recebe a planilha (multipart, campo "file") e cria a sessão
func UploadSheet(service uploading.Uploader, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) || r.ContentLength > maxBytes {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo maior que o permitido", map[string]int64{"max_bytes": maxBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"sheet_file": header.Filename,
			"sheet_size": header.Size,
		}).Info("sheets: upload recebido")

		session, err := service.Upload(r.Context(), header.Filename, file)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(session); err != nil {
			logger.WithError(err).Error("sheets: erro ao codificar resposta")
		}
	})
}

func GetSheet(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.GetSession(r.Context(), sessionID)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, session)
	})
}

// GetSheetRecords retorna a tabela normalizada completa da sessão
func GetSheetRecords(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		records, err := service.GetRecords(r.Context(), sessionID)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, records)
	})
}

func DeleteSheet(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSession(r.Context(), sessionID); err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
