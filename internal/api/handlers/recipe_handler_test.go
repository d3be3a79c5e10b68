package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipe-service/domain"
	"recipe-service/internal/api/handlers"
	"recipe-service/internal/api/routes"
	"recipe-service/internal/middleware"
	"recipe-service/internal/testutil"
	"recipe-service/internal/utils"
	"recipe-service/pkg/aggregate"
	"recipe-service/pkg/category"
	"recipe-service/pkg/jwt"
	"recipe-service/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saladBody = `{
	"name": "Salad",
	"servings": 2,
	"cooking_time": 10,
	"ingredients": [{"name": "Lettuce", "amount": "3 leaves"}],
	"steps": [{"instruction": "Wash"}, {"instruction": "Chop"}],
	"categories": ["side"]
}`

func newTestApp(t *testing.T, jwtService jwt.JWTService) *fiber.App {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	svc := recipe.NewRecipeService(
		recipe.NewRecipeRepository(db, log),
		category.NewCategoryRepository(db, log),
		aggregate.NewWriter(db, log),
		utils.NewValidator(),
		log,
	)
	app := fiber.New()
	cfg := routes.Config{
		App:           app,
		RecipeHandler: handlers.NewRecipeHandler(svc),
		Middleware:    middleware.NewMiddleware(),
		JWTService:    jwtService,
	}
	cfg.Setup()
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRecipeLifecycle(t *testing.T) {
	app := newTestApp(t, jwt.NewJWTServiceWith("", ""))

	resp, raw := do(t, app, http.MethodPost, "/api/recipes", saladBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	var created domain.RecipeResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Len(t, created.Ingredients, 1)
	require.Len(t, created.Steps, 2)
	assert.Equal(t, 1, created.Steps[0].Order)
	assert.Equal(t, 2, created.Steps[1].Order)
	require.Len(t, created.Categories, 1)
	assert.Equal(t, "side", created.Categories[0].Name)

	resp, raw = do(t, app, http.MethodGet, "/api/recipes/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var shown domain.RecipeResponse
	require.NoError(t, json.Unmarshal(raw, &shown))
	assert.Equal(t, created.ID, shown.ID)

	update := `{"name":"Salad","servings":2,"cooking_time":10,"ingredients":[{"name":"Lettuce","amount":"3 leaves"}],"steps":["Toss"]}`
	resp, raw = do(t, app, http.MethodPut, "/api/recipes/"+created.ID, update)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var updated domain.RecipeResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.Len(t, updated.Steps, 1)
	assert.Equal(t, 1, updated.Steps[0].Order)
	assert.Empty(t, updated.Categories)

	resp, raw = do(t, app, http.MethodGet, "/api/recipes?OrderBy=calories&Order=asc", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []domain.RecipeResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 1)

	resp, _ = do(t, app, http.MethodDelete, "/api/recipes/"+created.ID, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/recipes/"+created.ID, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecipeErrors(t *testing.T) {
	app := newTestApp(t, jwt.NewJWTServiceWith("", ""))
	missing := "/api/recipes/" + uuid.NewString()

	t.Run("validation", func(t *testing.T) {
		body := `{"name":"","servings":0,"cooking_time":10,"ingredients":[],"steps":[{"instruction":"Wash"}]}`
		resp, raw := do(t, app, http.MethodPost, "/api/recipes", body)
		require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

		var got struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, domain.MessageInvalidRecipe, got.Message)
		assert.Contains(t, got.Errors, "name")
		assert.Contains(t, got.Errors, "servings")
		assert.Contains(t, got.Errors, "ingredients")
	})

	t.Run("malformed json", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodPost, "/api/recipes", `{"name":`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update missing", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodPut, missing, saladBody)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete missing", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodDelete, missing, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("show malformed id", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodGet, "/api/recipes/abc", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		resp, raw := do(t, app, http.MethodGet, "/api/recipes?OrderBy=bogus", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, string(raw))
	})
}

func TestWriteRoutesRequireTokenWhenSecretSet(t *testing.T) {
	jwtService := jwt.NewJWTServiceWith("test-secret", "RECIPES")
	app := newTestApp(t, jwtService)

	resp, _ := do(t, app, http.MethodPost, "/api/recipes", saladBody)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/recipes", saladBody, fiber.HeaderAuthorization, "Bearer nope")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := jwtService.GenerateToken("tester", time.Minute)
	require.NoError(t, err)
	resp, raw := do(t, app, http.MethodPost, "/api/recipes", saladBody, fiber.HeaderAuthorization, "Bearer "+token)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	resp, _ = do(t, app, http.MethodGet, "/api/recipes", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPing(t *testing.T) {
	app := newTestApp(t, jwt.NewJWTServiceWith("", ""))

	resp, raw := do(t, app, http.MethodGet, "/api/ping", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"pong"}`, string(raw))
}
