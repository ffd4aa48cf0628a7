package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
)

// UploadFile responde o POST /api/upload-file salvando as linhas válidas de
// todos os arquivos do corpo multipart.
func UploadFile(service ingesting.Ingester, maxSizeMB int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxSizeMB << 20); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNoFileUploaded)
			return
		}

		// Ordem determinística entre campos; dentro de um campo os arquivos
		// mantêm a ordem em que chegaram no corpo
		fields := make([]string, 0, len(r.MultipartForm.File))
		for field := range r.MultipartForm.File {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		var files []ingesting.UploadedFile
		for _, field := range fields {
			for _, header := range r.MultipartForm.File[field] {
				part, err := header.Open()
				if err != nil {
					logrus.Error("Erro ao abrir arquivo enviado:", err)
					apiErrors.WriteError(w, apiErrors.ErrInternalServer)
					return
				}
				defer part.Close()

				files = append(files, ingesting.UploadedFile{
					Name:    header.Filename,
					Content: part,
				})
			}
		}

		if len(files) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNoFileUploaded)
			return
		}

		inserted, err := service.Ingest(r.Context(), files)
		if err != nil {
			if errors.Is(err, ingesting.ErrNoValidData) {
				apiErrors.WriteError(w, apiErrors.ErrNoValidData)
				return
			}

			logrus.Error("Erro ao processar upload:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation)
			return
		}

		apiErrors.WriteMessage(w, http.StatusOK, fmt.Sprintf("%d rows saved", inserted))
	}
}
