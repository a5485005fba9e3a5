package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authorizing"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret, role string, method jwt.SigningMethod) string {
	t.Helper()

	claims := domain.Claims{
		AnalyticsRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// echoRole devolve o papel resolvido no corpo da resposta
func echoRole() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(RoleFromContext(r.Context())))
	})
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		fallback       string
		setup          func(t *testing.T, req *http.Request)
		expectedStatus int
		expectedRole   string
	}{
		{
			name:           "sem cabeçalho e sem token usa admin",
			fallback:       "visor",
			setup:          func(t *testing.T, req *http.Request) {},
			expectedStatus: http.StatusOK,
			expectedRole:   authorizing.RoleAdmin,
		},
		{
			name:     "cabeçalho tem prioridade sobre o token",
			fallback: "admin",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set(RoleHeader, "VISOR")
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "operador", jwt.SigningMethodHS256))
			},
			expectedStatus: http.StatusOK,
			expectedRole:   authorizing.RoleVisor,
		},
		{
			name:     "claim do token",
			fallback: "admin",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "operador", jwt.SigningMethodHS256))
			},
			expectedStatus: http.StatusOK,
			expectedRole:   authorizing.RoleOperador,
		},
		{
			name:     "papel desconhecido cai no fallback",
			fallback: "visor",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set(RoleHeader, "superusuario")
			},
			expectedStatus: http.StatusOK,
			expectedRole:   authorizing.RoleVisor,
		},
		{
			name:     "token com assinatura errada",
			fallback: "admin",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, "outro-segredo", "visor", jwt.SigningMethodHS256))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "token com algoritmo não aceito",
			fallback: "admin",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "visor", jwt.SigningMethodHS512))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "token malformado",
			fallback: "admin",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer abc.def")
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RoleMiddleware(authorizing.NewRoleResolver(tt.fallback), testSecret)(echoRole())

			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil)
			tt.setup(t, req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedRole, rec.Body.String())
			}
		})
	}
}

func TestRoleMiddleware_SemSegredoIgnoraToken(t *testing.T) {
	handler := RoleMiddleware(authorizing.NewRoleResolver("admin"), "")(echoRole())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer qualquer-coisa")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, authorizing.RoleAdmin, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		required       string
		expectedStatus int
	}{
		{name: "admin acessa rota de operador", role: "admin", required: "operador", expectedStatus: http.StatusOK},
		{name: "operador acessa rota de operador", role: "operador", required: "operador", expectedStatus: http.StatusOK},
		{name: "visor não acessa rota de operador", role: "visor", required: "operador", expectedStatus: http.StatusForbidden},
		{name: "sem papel não acessa", role: "", required: "visor", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.required)(echoRole())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RoleHeader, tt.role)
			rec := httptest.NewRecorder()

			if tt.role != "" {
				RoleMiddleware(authorizing.NewRoleResolver("admin"), "")(handler).ServeHTTP(rec, req)
			} else {
				handler.ServeHTTP(rec, req)
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "Permiso insuficiente")
			}
		})
	}
}

func TestFeatureFlag(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	disabled := FeatureFlag(false, "/v1/analytics")(ok)

	rec := httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "ANALYTICS_DISABLED")

	rec = httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	FeatureFlag(true, "/v1/analytics")(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/analytics/summary", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), RoleHeader)

	req = httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil)
	req.Header.Set("Origin", "https://desconhecido.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
