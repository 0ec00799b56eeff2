package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
	apphttp "github.com/jhoicas/negocio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCookieName = "session_id"
	testBusinessID = "00000000-0000-0000-0000-000000000001"
	testSessionID  = "00000000-0000-0000-0000-0000000000aa"
)

// fakeSessionRepo almacén de sesiones en memoria para los tests.
type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(session *entity.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) Delete(id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(now time.Time) error {
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// buildSessionApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler dummy que expone los locals cargados.
func buildSessionApp(repo *fakeSessionRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(repo, testCookieName),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"business_id": apphttp.GetBusinessID(c),
				"session_id":  apphttp.GetSessionID(c),
			})
		},
	)
	return app
}

// doSessionRequest lanza GET /protected con la cookie indicada (vacía = sin cookie).
func doSessionRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Cookie con sesión vigente → pasa y deja los locals cargados.
func TestSessionMiddleware_SesionValida_Accede(t *testing.T) {
	repo := newFakeSessionRepo()
	require.NoError(t, repo.Create(&entity.Session{
		ID:         testSessionID,
		BusinessID: testBusinessID,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}))
	app := buildSessionApp(repo)

	resp := doSessionRequest(t, app, testSessionID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una sesión vigente debe poder acceder a la ruta protegida")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testBusinessID, body["business_id"], "el local business_id debe venir de la sesión")
	assert.Equal(t, testSessionID, body["session_id"], "el local session_id debe ser el de la cookie")
}

// Caso 2: Sin cookie → HTTP 401 UNAUTHORIZED.
func TestSessionMiddleware_SinCookie_Retorna401(t *testing.T) {
	app := buildSessionApp(newFakeSessionRepo())

	resp := doSessionRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin cookie de sesión debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED",
		"la respuesta de error debe incluir el código UNAUTHORIZED")
}

// Caso 3: Cookie con sesión inexistente en el almacén → HTTP 401.
func TestSessionMiddleware_SesionInexistente_Retorna401(t *testing.T) {
	app := buildSessionApp(newFakeSessionRepo())

	resp := doSessionRequest(t, app, "no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED",
		"una sesión desconocida se trata igual que una expirada")
}

// Caso 4: Sesión expirada → HTTP 401 SESSION_EXPIRED.
func TestSessionMiddleware_SesionExpirada_Retorna401(t *testing.T) {
	repo := newFakeSessionRepo()
	require.NoError(t, repo.Create(&entity.Session{
		ID:         testSessionID,
		BusinessID: testBusinessID,
		ExpiresAt:  time.Now().Add(-time.Minute),
		CreatedAt:  time.Now().Add(-25 * time.Hour),
	}))
	app := buildSessionApp(repo)

	resp := doSessionRequest(t, app, testSessionID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una sesión vencida debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED")
}

// failingSessionRepo falla en cualquier lectura; prueba que el middleware no
// consulta el almacén cuando la cookie ni siquiera tiene forma de ID.
type failingSessionRepo struct{}

func (failingSessionRepo) Create(*entity.Session) error { return nil }
func (failingSessionRepo) GetByID(string) (*entity.Session, error) {
	return nil, errors.New(`failed to encode args[0]: unable to encode "not-a-uuid" into OID 2950`)
}
func (failingSessionRepo) Delete(string) error           { return nil }
func (failingSessionRepo) DeleteExpired(time.Time) error { return nil }

// Caso 5: Cookie con basura que no es un UUID → HTTP 401, nunca 500.
func TestSessionMiddleware_CookieMalformada_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(failingSessionRepo{}, testCookieName),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp := doSessionRequest(t, app, "not-a-uuid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie que no es un UUID es un fallo de autenticación, no del servidor")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED")
}

// Caso 6: DeleteExpired purga solo las sesiones vencidas.
func TestSessionRepo_DeleteExpired_PurgaSoloVencidas(t *testing.T) {
	repo := newFakeSessionRepo()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.Session{ID: "viva", BusinessID: testBusinessID, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Create(&entity.Session{ID: "vencida", BusinessID: testBusinessID, ExpiresAt: now.Add(-time.Hour)}))

	require.NoError(t, repo.DeleteExpired(now))

	viva, err := repo.GetByID("viva")
	require.NoError(t, err)
	assert.NotNil(t, viva, "la sesión vigente debe sobrevivir la purga")

	vencida, err := repo.GetByID("vencida")
	require.NoError(t, err)
	assert.Nil(t, vencida, "la sesión vencida debe eliminarse")
}
