package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicescale/internal/adapter/http/handlers/mocks"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUploadRouter(h *UploadHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/uploads", h.ListUploads)
	r.DELETE("/v1/uploads/:id", h.DeleteUpload)
	r.POST("/v1/uploads/:id/restore", h.RestoreUpload)
	r.DELETE("/v1/uploads/:id/records", h.PurgeUpload)
	return r
}

func TestUploadHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUploadUseCase(ctrl)
	h := NewUploadHandler(uc)
	r := newUploadRouter(h)

	uc.EXPECT().List(gomock.Any(), true).Return([]entities.Upload{{ID: "7", Kind: entities.UploadKindCustomers, RowCount: 2}}, nil)
	uc.EXPECT().SoftDelete(gomock.Any(), "7").Return(entities.Upload{ID: "7", Deleted: true}, nil)
	uc.EXPECT().Restore(gomock.Any(), "7").Return(entities.Upload{ID: "7"}, nil)
	uc.EXPECT().Remove(gomock.Any(), "7").Return(2, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/uploads?include_deleted=1", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"name":"Upload 7"`)) {
		t.Fatalf("unexpected list response %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/uploads/7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/uploads/7/restore", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/uploads/7/records", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"removed":2`)) {
		t.Fatalf("unexpected purge response %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadHandler_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUploadUseCase(ctrl)
	h := NewUploadHandler(uc)

	uc.EXPECT().Remove(gomock.Any(), "7").Return(0, &usecase.RemoteError{Op: "store.delete", Err: errors.New("unavailable")})

	w := httptest.NewRecorder()
	newUploadRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/uploads/7/records", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
