package api_test

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
	"github.com/pageza/skinroutine/backend/internal/api"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/seed"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	s := store.NewMemoryStore()
	log := logger.Discard()
	m := metrics.New()
	catalog := service.NewCatalogService(s)

	c, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.LoadCatalog(context.Background(), catalog, c, log)
	require.NoError(t, err)

	router := gin.New()
	api.RegisterRoutes(router, api.Dependencies{
		Auth:        service.NewAuthService(s, "test-secret", time.Hour),
		Profile:     service.NewProfileService(s),
		Catalog:     catalog,
		Safety:      service.NewSafetyClassifier(s, m),
		Assessments: service.NewAssessmentService(s),
		Routines:    service.NewRoutineService(s, service.NewRoutineComposer(s, m), nil, m, log),
		Store:       s,
		Metrics:     m,
		Log:         log,
	})
	return &testAPI{router: router}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (a *testAPI) register(t *testing.T, username string, allergies ...string) types.AuthResponse {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/v1/auth/register", "", types.RegisterRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Allergies:       allergies,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.AuthResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp
}

func (a *testAPI) createAssessment(t *testing.T, token string) models.Assessment {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/v1/assessments", token, map[string]interface{}{
		"skinType":      "oily",
		"concerns":      []string{"acne", "large-pores"},
		"ageRange":      "25-34",
		"budget":        "moderate",
		"timeAvailable": "moderate",
		"lifestyle":     map[string]interface{}{"sleepHours": 7, "exercise": true, "diet": "balanced"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var assessment models.Assessment
	decode(t, w, &assessment)
	return assessment
}

func TestHealthAndOptions(t *testing.T) {
	a := newTestAPI(t)

	for _, path := range []string{"/health", "/api/health", "/ready"} {
		w := a.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := a.do(t, http.MethodGet, "/api/v1/options", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var options models.QuestionnaireOptions
	decode(t, w, &options)
	assert.Len(t, options.SkinTypes, len(models.SkinTypes))

	w = a.do(t, http.MethodGet, "/api/v1/seasons/current", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var season map[string]string
	decode(t, w, &season)
	assert.True(t, models.Season(season["season"]).Valid())

	w = a.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	a := newTestAPI(t)
	resp := a.register(t, "alice", "Fragrance")
	assert.Equal(t, []string{"Fragrance"}, []string(resp.User.Allergies))

	w := a.do(t, http.MethodPost, "/api/v1/auth/register", "", types.RegisterRequest{
		Username:        "alice2",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/auth/register", "", types.RegisterRequest{Email: "bad"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verr struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	decode(t, w, &verr)
	assert.Equal(t, "validation failed", verr.Error)
	assert.NotEmpty(t, verr.Fields)

	w = a.do(t, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{Email: "ALICE@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{Email: "alice@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPut, "/api/v1/profile/allergies", resp.Token, types.UpdateAllergiesRequest{Allergies: []string{"Honey", "honey"}})
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decode(t, w, &user)
	assert.Equal(t, []string{"Honey"}, []string(user.Allergies))
}

func TestProductQueries(t *testing.T) {
	a := newTestAPI(t)

	var all []models.Product
	w := a.do(t, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &all)
	require.NotEmpty(t, all)

	var remedies []models.Product
	w = a.do(t, http.MethodGet, "/api/v1/products?isHomeRemedy=true&category=Cleanser", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &remedies)
	require.NotEmpty(t, remedies)
	for _, p := range remedies {
		assert.True(t, p.IsHomeRemedy)
		assert.Equal(t, models.CategoryCleanser, p.Category)
	}

	var oily []models.Product
	w = a.do(t, http.MethodGet, "/api/v1/products?skinTypes=oily&concerns=acne,blackheads", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &oily)
	require.NotEmpty(t, oily)
	for i := 1; i < len(oily); i++ {
		if oily[i-1].Rating != nil && oily[i].Rating != nil {
			assert.GreaterOrEqual(t, *oily[i-1].Rating, *oily[i].Rating)
		}
	}

	w = a.do(t, http.MethodGet, "/api/v1/products?isHomeRemedy=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/products/"+all[0].ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(t, http.MethodGet, "/api/v1/products/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = a.do(t, http.MethodGet, "/api/v1/products/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngredientSafety(t *testing.T) {
	a := newTestAPI(t)
	token := a.register(t, "bob", "Raw Honey").Token

	w := a.do(t, http.MethodGet, "/api/v1/ingredients/raw%20honey", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ing models.Ingredient
	decode(t, w, &ing)
	assert.Equal(t, "Raw Honey", ing.Name)

	w = a.do(t, http.MethodGet, "/api/v1/ingredients/unobtainium", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/ingredients/analysis", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var analyses []types.IngredientAnalysis
	decode(t, w, &analyses)
	byName := map[string]types.IngredientAnalysis{}
	for _, an := range analyses {
		byName[an.Ingredient] = an
	}
	assert.Equal(t, models.SafetyWarning, byName["Raw Honey"].DisplayLevel)
	assert.True(t, byName["Raw Honey"].Allergen)
	assert.Equal(t, models.SafetySafe, byName["Niacinamide"].DisplayLevel)

	var remedies []models.Product
	w = a.do(t, http.MethodGet, "/api/v1/products?isHomeRemedy=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &remedies)

	var honeyOat models.Product
	for _, p := range remedies {
		if p.Name == "Honey Oat Cleanser" {
			honeyOat = p
		}
	}
	require.NotEqual(t, uuid.Nil, honeyOat.ID)

	w = a.do(t, http.MethodGet, "/api/v1/products/"+honeyOat.ID.String()+"/safety", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var safety types.ProductSafety
	decode(t, w, &safety)
	assert.Equal(t, models.SafetyWarning, safety.Overall)

	w = a.do(t, http.MethodGet, "/api/v1/products/"+honeyOat.ID.String()+"/safety", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssessmentOwnership(t *testing.T) {
	a := newTestAPI(t)
	alice := a.register(t, "alice")
	mallory := a.register(t, "mallory")

	assessment := a.createAssessment(t, alice.Token)
	assert.Equal(t, alice.User.ID, assessment.UserID)
	assert.Equal(t, models.SkinTypeOily, assessment.SkinType)

	w := a.do(t, http.MethodGet, "/api/v1/assessments/"+assessment.ID.String(), alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(t, http.MethodGet, "/api/v1/assessments/"+assessment.ID.String(), mallory.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/assessments/user/"+alice.User.ID.String(), mallory.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/assessments/user/"+alice.User.ID.String(), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Assessment
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = a.do(t, http.MethodPost, "/api/v1/assessments", mallory.Token, map[string]interface{}{
		"userId":        alice.User.ID,
		"skinType":      "dry",
		"concerns":      []string{"dryness"},
		"ageRange":      "18-24",
		"budget":        "budget",
		"timeAvailable": "quick",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/assessments", alice.Token, map[string]interface{}{"skinType": "scaly"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// fieldErrors decodes a validation response into field -> message
func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	decode(t, w, &body)
	require.Equal(t, "validation failed", body.Error)
	out := make(map[string]string, len(body.Fields))
	for _, f := range body.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func validAssessmentBody() map[string]interface{} {
	return map[string]interface{}{
		"skinType":      "dry",
		"concerns":      []string{"dryness"},
		"ageRange":      "18-24",
		"budget":        "budget",
		"timeAvailable": "quick",
	}
}

func TestAssessmentReportsEveryMissingField(t *testing.T) {
	a := newTestAPI(t)
	token := a.register(t, "alice").Token

	fields := fieldErrors(t, a.do(t, http.MethodPost, "/api/v1/assessments", token, map[string]interface{}{}))
	assert.Equal(t, map[string]string{
		"skinType":      "is required",
		"concerns":      "is required",
		"ageRange":      "is required",
		"budget":        "is required",
		"timeAvailable": "is required",
	}, fields)

	body := validAssessmentBody()
	body["skinType"] = "scaly"
	body["timeAvailable"] = "forever"
	fields = fieldErrors(t, a.do(t, http.MethodPost, "/api/v1/assessments", token, body))
	assert.Equal(t, map[string]string{
		"skinType":      "must be one of oily, dry, combination, sensitive",
		"timeAvailable": "must be one of quick, moderate, extensive",
	}, fields)
}

func TestAssessmentLifestyleKinds(t *testing.T) {
	a := newTestAPI(t)
	token := a.register(t, "alice").Token

	tests := []struct {
		name      string
		lifestyle string
	}{
		{"null", `{"sleep":null,"diet":"balanced"}`},
		{"object", `{"sleep":{"hours":7},"diet":"balanced"}`},
		{"array", `{"sleep":[7,8],"diet":"balanced"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validAssessmentBody()
			body["lifestyle"] = json.RawMessage(tt.lifestyle)

			fields := fieldErrors(t, a.do(t, http.MethodPost, "/api/v1/assessments", token, body))
			assert.Equal(t, map[string]string{"lifestyle.sleep": "must be a string, number or boolean"}, fields)
		})
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	a := newTestAPI(t)

	fields := fieldErrors(t, a.do(t, http.MethodPost, "/api/v1/auth/register", "", types.RegisterRequest{
		Username:        "carol",
		Email:           "carol@",
		Password:        "password123",
		ConfirmPassword: "password124",
	}))
	assert.Equal(t, map[string]string{
		"email":           "must be a valid email address",
		"confirmPassword": "must match password",
	}, fields)
}

func TestRoutineLifecycle(t *testing.T) {
	a := newTestAPI(t)
	alice := a.register(t, "alice")
	mallory := a.register(t, "mallory")
	assessment := a.createAssessment(t, alice.Token)

	w := a.do(t, http.MethodPost, "/api/v1/routines/generate", alice.Token, types.GenerateRequest{
		Assessment:     types.AssessmentProfile{SkinType: "oily", Concerns: []string{"acne"}},
		PreferenceType: "products",
		Season:         "summer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var generated types.GeneratedRoutine
	decode(t, w, &generated)
	require.Len(t, generated.MorningSteps, 4)
	require.Len(t, generated.EveningSteps, 3)
	assert.NotEmpty(t, generated.MorningSteps[0].Products)
	assert.Empty(t, generated.DraftID)
	assert.Equal(t, models.SeasonSummer, generated.SeasonalAdjustments.Season)

	w = a.do(t, http.MethodPost, "/api/v1/routines/generate", alice.Token, types.GenerateRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/routines", alice.Token, types.CreateRoutineRequest{
		AssessmentID:   assessment.ID,
		Name:           "Summer routine",
		Season:         "summer",
		PreferenceType: "products",
		MorningSteps:   generated.MorningSteps,
		EveningSteps:   generated.EveningSteps,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var routine models.Routine
	decode(t, w, &routine)
	assert.True(t, routine.IsActive)
	assert.Equal(t, alice.User.ID, routine.UserID)

	w = a.do(t, http.MethodPost, "/api/v1/routines", mallory.Token, types.CreateRoutineRequest{
		AssessmentID:   assessment.ID,
		Name:           "Stolen",
		Season:         "summer",
		PreferenceType: "products",
		MorningSteps:   generated.MorningSteps,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	routinePath := "/api/v1/routines/" + routine.ID.String()
	w = a.do(t, http.MethodGet, routinePath, mallory.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = a.do(t, http.MethodGet, "/api/v1/routines/user/"+alice.User.ID.String(), mallory.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(t, http.MethodPatch, routinePath, alice.Token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPatch, routinePath, alice.Token, map[string]bool{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Routine
	decode(t, w, &updated)
	assert.False(t, updated.IsActive)

	w = a.do(t, http.MethodGet, "/api/v1/routines/user/"+alice.User.ID.String(), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Routine
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive)

	w = a.do(t, http.MethodDelete, routinePath, mallory.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodDelete, routinePath, alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted map[string]string
	decode(t, w, &deleted)
	assert.Equal(t, "Routine deleted successfully", deleted["message"])
	assert.Equal(t, routine.ID.String(), deleted["id"])

	w = a.do(t, http.MethodGet, routinePath, alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
