package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	farmerapp "github.com/poultry/backend/internal/application/farmer"
	"github.com/poultry/backend/internal/domain/farmer"
	"github.com/poultry/backend/internal/domain/shared"
	"github.com/poultry/backend/internal/interfaces/http/dto"
	"github.com/poultry/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFarmerRepository struct {
	farmers map[uuid.UUID]*farmer.Farmer
}

func newMockFarmerRepository() *mockFarmerRepository {
	return &mockFarmerRepository{farmers: make(map[uuid.UUID]*farmer.Farmer)}
}

func (m *mockFarmerRepository) FindByID(_ context.Context, id uuid.UUID) (*farmer.Farmer, error) {
	f, ok := m.farmers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return f, nil
}

func (m *mockFarmerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*farmer.Farmer, error) {
	return m.FindByID(ctx, id)
}

func (m *mockFarmerRepository) FindByNIN(_ context.Context, nin string) (*farmer.Farmer, error) {
	for _, f := range m.farmers {
		if f.NIN == nin {
			return f, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockFarmerRepository) FindAll(_ context.Context, _ shared.Filter) ([]farmer.Farmer, error) {
	var out []farmer.Farmer
	for _, f := range m.farmers {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFarmerRepository) FindByType(_ context.Context, farmerType farmer.FarmerType, _ shared.Filter) ([]farmer.Farmer, error) {
	var out []farmer.Farmer
	for _, f := range m.farmers {
		if f.Type == farmerType {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFarmerRepository) Save(_ context.Context, f *farmer.Farmer) error {
	m.farmers[f.ID] = f
	return nil
}

func (m *mockFarmerRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.farmers, id)
	return nil
}

func (m *mockFarmerRepository) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(m.farmers)), nil
}

func (m *mockFarmerRepository) ExistsByNIN(_ context.Context, nin string) (bool, error) {
	for _, f := range m.farmers {
		if f.NIN == nin {
			return true, nil
		}
	}
	return false, nil
}

func setupFarmerRouter(repo *mockFarmerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	h := NewFarmerHandler(farmerapp.NewService(repo, nil))

	r := gin.New()
	r.POST("/farmers", h.Register)
	r.GET("/farmers/:id", h.GetByID)
	r.GET("/farmers/nin/:nin", h.GetByNIN)
	r.POST("/farmers/:id/deactivate", h.Deactivate)
	return r
}

func seedFarmer(t *testing.T, repo *mockFarmerRepository, nin string) *farmer.Farmer {
	t.Helper()
	dob := time.Now().AddDate(-24, 0, 0)
	f, err := farmer.NewFarmer("Namukasa Irene", nin, "0772000001", farmer.GenderFemale, dob, "officer-01")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), f))
	return f
}

func TestFarmerHandler_Register(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)

	body := map[string]any{
		"name":          "Okello James",
		"nin":           "CM90012345ABCD",
		"phone":         "0772000001",
		"gender":        "male",
		"date_of_birth": "2002-03-14",
		"village":       "Kyanja",
		"district":      "Wakiso",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/farmers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OfficerIDKey, "officer-07")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Okello James", data["name"])
	assert.Equal(t, "CM90012345ABCD", data["nin"])
	assert.Equal(t, "starter", data["type"])
	assert.Equal(t, "officer-07", data["registered_by"])
}

func TestFarmerHandler_Register_InvalidNIN(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)

	body := map[string]any{
		"name":          "Okello James",
		"nin":           "too-short",
		"gender":        "male",
		"date_of_birth": "2002-03-14",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/farmers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFarmerHandler_Register_DuplicateNIN(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)
	seedFarmer(t, repo, "CM90012345ABCD")

	body := map[string]any{
		"name":          "Okello James",
		"nin":           "CM90012345ABCD",
		"gender":        "male",
		"date_of_birth": "2002-03-14",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/farmers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestFarmerHandler_GetByID(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)
	f := seedFarmer(t, repo, "CF88045678WXYZ")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/farmers/"+f.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, f.ID.String(), data["id"])
}

func TestFarmerHandler_GetByID_NotFound(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/farmers/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFarmerHandler_GetByID_InvalidID(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/farmers/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFarmerHandler_GetByNIN(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)
	seedFarmer(t, repo, "CF88045678WXYZ")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/farmers/nin/CF88045678WXYZ", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "CF88045678WXYZ", data["nin"])
}

func TestFarmerHandler_Deactivate(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)
	f := seedFarmer(t, repo, "CF88045678WXYZ")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/farmers/"+f.ID.String()+"/deactivate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, farmer.FarmerStatusInactive, repo.farmers[f.ID].Status)
}

func TestFarmerHandler_Deactivate_AlreadyInactive(t *testing.T) {
	repo := newMockFarmerRepository()
	router := setupFarmerRouter(repo)
	f := seedFarmer(t, repo, "CF88045678WXYZ")
	require.NoError(t, f.Deactivate())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/farmers/"+f.ID.String()+"/deactivate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
