package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicescale/internal/adapter/http/handlers/mocks"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newImportRouter(h *ImportHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/imports", h.SniffImport)
	r.POST("/v1/imports/:session_id/confirm", h.ConfirmImport)
	r.DELETE("/v1/imports/:session_id", h.CancelImport)
	return r
}

func multipartCSV(t *testing.T, kind, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("kind", kind); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestImportHandler_SniffImport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewImportHandler(mocks.NewMockIImportUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/imports", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("file and kind reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		csv := "Full Name,Street\nJane,1 Elm St\n"
		uc.EXPECT().Sniff(gomock.Any(), entities.UploadKindCustomers, "customers.csv", []byte(csv)).
			Return(usecase.ImportPreview{SessionID: "s1", Headers: []string{"Full Name", "Street"}}, nil)

		body, contentType := multipartCSV(t, " Customers ", "customers.csv", csv)
		req := httptest.NewRequest(http.MethodPost, "/v1/imports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"session_id":"s1"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("parse errors are 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().Sniff(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ImportPreview{}, &usecase.ImportParseError{Line: 2})

		body, contentType := multipartCSV(t, "pricebook", "prices.csv", "name,price\n\"x,1\n")
		req := httptest.NewRequest(http.MethodPost, "/v1/imports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestImportHandler_ConfirmImport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mapping is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "s1", usecase.ColumnMapping{"name": "Full Name"}).
			Return(usecase.ImportResult{BatchID: "42", Kind: entities.UploadKindCustomers, RowCount: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/s1/confirm", bytes.NewBufferString(`{"mapping":{"Name":"Full Name","email":""}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"batch_id":"42"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewImportHandler(mocks.NewMockIImportUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/s1/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("required field unmapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "s1", usecase.ColumnMapping{}).
			Return(usecase.ImportResult{}, &usecase.ValidationError{Field: "name", Reason: "must be mapped"})

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/s1/confirm", bytes.NewBufferString(`{"mapping":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newImportRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestImportHandler_CancelImport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIImportUseCase(ctrl)
	h := NewImportHandler(uc)
	r := newImportRouter(h)

	uc.EXPECT().Cancel(gomock.Any(), "s1").Return(nil)
	uc.EXPECT().Cancel(gomock.Any(), "gone").Return(&usecase.NotFoundError{Kind: "import session", ID: "gone"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/imports/s1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/imports/gone", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
