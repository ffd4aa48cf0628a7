package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast-api/internal/api/handler"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

const testMaxSizeMB = 32

// multipartBody monta um corpo multipart com um arquivo por entrada do mapa.
func multipartBody(t *testing.T, files map[string]string) (io.Reader, string) {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)

		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return &buffer, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIngester(ctrl)
	mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Len(1)).
		Return(3, nil)

	body, contentType := multipartBody(t, map[string]string{
		"vendas.csv": "Date,Qty,Price,MRP\n2024-01-02,3,100,120",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"3 rows saved"}`, recorder.Body.String())
}

func TestUploadFile_OrdemDeterministicaEntreCampos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var received []string
	mockService := mocks.NewMockIngester(ctrl)
	mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, files []ingesting.UploadedFile) (int, error) {
			for _, file := range files {
				received = append(received, file.Name)
			}
			return len(files), nil
		})

	// Campos fora de ordem alfabética; os arquivos devem chegar ao serviço
	// ordenados pelo nome do campo
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	for _, entry := range []struct{ field, name string }{
		{field: "zeta", name: "segundo.csv"},
		{field: "alfa", name: "primeiro.csv"},
	} {
		part, err := writer.CreateFormFile(entry.field, entry.name)
		require.NoError(t, err)
		_, err = part.Write([]byte("Date,Qty,Price,MRP\n2024-01-02,3,100,120"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", &buffer)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"primeiro.csv", "segundo.csv"}, received)
}

func TestUploadFile_SemCorpoMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIngester(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", strings.NewReader("sem multipart"))
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, recorder.Body.String())
}

func TestUploadFile_SemArquivos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIngester(ctrl)

	// Corpo multipart válido, porém só com campos de formulário
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	require.NoError(t, writer.WriteField("comentario", "sem arquivos"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", &buffer)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, recorder.Body.String())
}

func TestUploadFile_SemLinhasValidas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIngester(ctrl)
	mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(0, ingesting.ErrNoValidData)

	body, contentType := multipartBody(t, map[string]string{
		"vendas.csv": "Date,Qty,Price,MRP\nN/A,1,100,120",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"No valid data"}`, recorder.Body.String())
}

func TestUploadFile_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIngester(ctrl)
	mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(0, errors.New("conexão perdida"))

	body, contentType := multipartBody(t, map[string]string{
		"vendas.csv": "Date,Qty,Price,MRP\n2024-01-02,3,100,120",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.UploadFile(mockService, testMaxSizeMB).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, recorder.Body.String())
}
