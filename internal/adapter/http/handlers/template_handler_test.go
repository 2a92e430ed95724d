package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicescale/internal/adapter/http/handlers/mocks"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTemplateRouter(h *TemplateHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/templates", h.ListTemplates)
	r.POST("/v1/templates", h.CreateTemplate)
	r.GET("/v1/templates/:id", h.GetTemplate)
	r.PUT("/v1/templates/:id/default", h.SetDefaultTemplate)
	return r
}

func TestTemplateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITemplateUseCase(ctrl)
	h := NewTemplateHandler(uc)
	r := newTemplateRouter(h)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(entities.Template{ID: "t1", Name: "Standard", Sections: []entities.TemplateSection{{ID: "s1", Type: "text"}}}, nil)
	uc.EXPECT().SetDefault(gomock.Any(), "t1").Return(entities.Template{ID: "t1", IsDefault: true}, nil)
	uc.EXPECT().Get(gomock.Any(), "nope").Return(entities.Template{}, &usecase.NotFoundError{Kind: "template", ID: "nope"})
	uc.EXPECT().List(gomock.Any()).Return(nil, nil)

	w := postJSON(r, "/v1/templates", `{"name":"Standard","sections":[{"id":"s1","type":"text","order":0}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = postJSON(r, "/v1/templates", `{"description":"no name"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/templates/t1/default", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"is_default":true`)) {
		t.Fatalf("unexpected default response %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected list response %d: %s", w.Code, w.Body.String())
	}
}
