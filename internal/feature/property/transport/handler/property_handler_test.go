package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_backend/internal/feature/auth/transport/middleware"
	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/usecase"
	"estate_backend/internal/shared/identity"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockPropertyUsecase is a mock implementation of the PropertyUsecase interface.
type mockPropertyUsecase struct {
	CreateFunc func(ctx context.Context, caller *identity.Identity, in usecase.PropertyInput) (*entity.Property, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Property, error)
	ListFunc   func(ctx context.Context, q usecase.ListQuery) (*usecase.PropertyPage, error)
	CountFunc  func(ctx context.Context) (int64, error)
	UpdateFunc func(ctx context.Context, caller *identity.Identity, id uint, in usecase.PropertyInput) (*entity.Property, error)
	DeleteFunc func(ctx context.Context, caller *identity.Identity, id uint) error
}

func (m *mockPropertyUsecase) Create(ctx context.Context, caller *identity.Identity, in usecase.PropertyInput) (*entity.Property, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, caller, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPropertyUsecase) Get(ctx context.Context, id uint) (*entity.Property, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrPropertyNotFound
}

func (m *mockPropertyUsecase) List(ctx context.Context, q usecase.ListQuery) (*usecase.PropertyPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return &usecase.PropertyPage{Page: 1, Limit: 20}, nil
}

func (m *mockPropertyUsecase) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockPropertyUsecase) Update(ctx context.Context, caller *identity.Identity, id uint, in usecase.PropertyInput) (*entity.Property, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, caller, id, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPropertyUsecase) Delete(ctx context.Context, caller *identity.Identity, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, caller, id)
	}
	return nil
}

// withIdentity はテスト用にヘッダー X-Test-User があればIdentityを設定します。
func withIdentity(c *gin.Context) {
	if c.GetHeader("X-Test-User") != "" {
		c.Set(middleware.ContextIdentity, &identity.Identity{ID: c.GetHeader("X-Test-User"), Name: "Jane"})
	}
}

func newRouter(uc PropertyUsecase) *gin.Engine {
	h := NewPropertyHandler(uc)
	r := gin.New()
	r.Use(withIdentity)
	r.GET("/api/properties", h.List)
	r.GET("/api/properties/:id", h.Get)
	r.POST("/api/properties", h.Create)
	r.PUT("/api/properties/:id", h.Update)
	r.DELETE("/api/properties/:id", h.Delete)
	r.GET("/dashboard", h.Overview)
	return r
}

func do(r http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() gin.H {
	return gin.H{
		"title":       "Sunny flat",
		"description": "Two bedrooms near the park and the station",
		"price":       250000,
		"location":    "Lisbon",
		"images":      []string{"https://cdn.example.com/1.webp"},
	}
}

func stored(id uint, owner string) *entity.Property {
	return &entity.Property{
		ID:          id,
		Title:       "Sunny flat",
		Description: "Two bedrooms near the park and the station",
		Price:       250000,
		Location:    "Lisbon",
		Images:      []string{"https://cdn.example.com/1.webp"},
		UserID:      owner,
	}
}

func TestPropertyHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		body       gin.H
		createErr  error
		wantStatus int
		wantField  string
	}{
		{"success", "u-1", validBody(), nil, http.StatusCreated, ""},
		{"title too short", "u-1", func() gin.H { b := validBody(); b["title"] = "Flat"; return b }(), nil, http.StatusBadRequest, "title"},
		{"description too short", "u-1", func() gin.H { b := validBody(); b["description"] = "short"; return b }(), nil, http.StatusBadRequest, "description"},
		{"zero price", "u-1", func() gin.H { b := validBody(); b["price"] = 0; return b }(), nil, http.StatusBadRequest, "price"},
		{"location too short", "u-1", func() gin.H { b := validBody(); b["location"] = "NY"; return b }(), nil, http.StatusBadRequest, "location"},
		{"bad image url", "u-1", func() gin.H { b := validBody(); b["images"] = []string{"not a url"}; return b }(), nil, http.StatusBadRequest, "images[0]"},
		{"unauthenticated", "", validBody(), usecase.ErrUnauthorized, http.StatusUnauthorized, ""},
		{"storage failure", "u-1", validBody(), errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCaller *identity.Identity
			uc := &mockPropertyUsecase{CreateFunc: func(ctx context.Context, caller *identity.Identity, in usecase.PropertyInput) (*entity.Property, error) {
				gotCaller = caller
				if tt.createErr != nil {
					return nil, tt.createErr
				}
				return stored(1, caller.ID), nil
			}}

			w := do(newRouter(uc), http.MethodPost, "/api/properties", tt.user, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantField != "" {
				fields := body["fields"].(map[string]any)
				assert.Contains(t, fields, tt.wantField)
				return
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "u-1", gotCaller.ID)
				assert.Equal(t, "u-1", body["userId"])
				assert.Equal(t, "https://cdn.example.com/1.webp", body["cover"])
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "failed to create property", body["error"])
			}
		})
	}
}

func TestPropertyHandler_CreateForm(t *testing.T) {
	var got usecase.PropertyInput
	uc := &mockPropertyUsecase{CreateFunc: func(ctx context.Context, caller *identity.Identity, in usecase.PropertyInput) (*entity.Property, error) {
		got = in
		return stored(1, caller.ID), nil
	}}

	form := url.Values{}
	form.Set("title", "Garden house")
	form.Set("description", "Quiet street, large garden, close to schools")
	form.Set("price", "480000")
	form.Set("location", "Utrecht")
	form.Add("images", "https://cdn.example.com/a.webp")
	form.Add("images", "https://cdn.example.com/b.mp4")

	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Test-User", "u-1")
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(480000), got.Price)
	assert.Equal(t, []string{"https://cdn.example.com/a.webp", "https://cdn.example.com/b.mp4"}, got.Images)
}

func TestPropertyHandler_Get(t *testing.T) {
	uc := &mockPropertyUsecase{GetFunc: func(ctx context.Context, id uint) (*entity.Property, error) {
		if id == 5 {
			return stored(5, "u-1"), nil
		}
		return nil, usecase.ErrPropertyNotFound
	}}
	r := newRouter(uc)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/properties/5", http.StatusOK},
		{"/api/properties/6", http.StatusNotFound},
		{"/api/properties/abc", http.StatusBadRequest},
		{"/api/properties/0", http.StatusBadRequest},
		{"/api/properties/-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPropertyHandler_List(t *testing.T) {
	var gotQuery usecase.ListQuery
	uc := &mockPropertyUsecase{ListFunc: func(ctx context.Context, q usecase.ListQuery) (*usecase.PropertyPage, error) {
		gotQuery = q
		return &usecase.PropertyPage{Items: []entity.Property{*stored(2, "u-1"), {ID: 1, UserID: "u-2"}}, Total: 2, Page: 1, Limit: 10}, nil
	}}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/api/properties?page=1&limit=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.ListQuery{Page: 1, Limit: 10}, gotQuery)

	var body struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Total)
	require.Len(t, body.Items, 2)
	assert.Equal(t, []any{}, body.Items[1]["images"], "nil media renders as empty list")

	w = do(r, http.MethodGet, "/api/properties?mine=true", "u-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", gotQuery.OwnerID)

	w = do(r, http.MethodGet, "/api/properties?mine=true", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/properties?limit=1000", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPropertyHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		path       string
		updateErr  error
		wantStatus int
	}{
		{"owner", "u-1", "/api/properties/1", nil, http.StatusOK},
		{"other owner", "u-2", "/api/properties/1", usecase.ErrForbidden, http.StatusForbidden},
		{"missing", "u-1", "/api/properties/9", usecase.ErrPropertyNotFound, http.StatusNotFound},
		{"anonymous", "", "/api/properties/1", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"bad id", "u-1", "/api/properties/x", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockPropertyUsecase{UpdateFunc: func(ctx context.Context, caller *identity.Identity, id uint, in usecase.PropertyInput) (*entity.Property, error) {
				if tt.updateErr != nil {
					return nil, tt.updateErr
				}
				return stored(id, caller.ID), nil
			}}

			w := do(newRouter(uc), http.MethodPut, tt.path, tt.user, validBody())

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPropertyHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		deleteErr  error
		wantStatus int
	}{
		{"owner", "u-1", nil, http.StatusOK},
		{"other owner", "u-2", usecase.ErrForbidden, http.StatusForbidden},
		{"anonymous", "", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"storage failure", "u-1", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uint
			uc := &mockPropertyUsecase{DeleteFunc: func(ctx context.Context, caller *identity.Identity, id uint) error {
				gotID = id
				return tt.deleteErr
			}}

			w := do(newRouter(uc), http.MethodDelete, "/api/properties/12", tt.user, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, uint(12), gotID)
		})
	}
}

func TestPropertyHandler_Overview(t *testing.T) {
	uc := &mockPropertyUsecase{CountFunc: func(ctx context.Context) (int64, error) { return 17, nil }}

	w := do(newRouter(uc), http.MethodGet, "/dashboard", "u-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"welcome":"Welcome back, Jane","totalProperties":17}`, w.Body.String())
}
