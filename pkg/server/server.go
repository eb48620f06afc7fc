// Package server is the optional HTTP front end: a chi router exposing
// POST /api/v1/evaluate over pkg/script, grounded on
// dekarrin-tunaq/server's Endpoint/EndpointResult shape but simplified
// to this service's single stateless operation.
package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/leinonen/racket-lisp/pkg/logging"
	"github.com/leinonen/racket-lisp/pkg/script"
)

// Config selects the auth behavior of New.
type Config struct {
	// JWTSecret, if non-empty, requires every request to carry a
	// bearer token signed with this secret (HS256). Empty disables
	// auth entirely: any request is served.
	JWTSecret string
}

// New builds the router. Every /api/v1/evaluate request is one
// independent call to pkg/script: there is no shared mutable state
// between requests, matching spec.md section 5's single-threaded,
// no-locking evaluation model applied per-request.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.JWTSecret != "" {
			api.Use(requireBearerJWT([]byte(cfg.JWTSecret)))
		}
		api.Post("/evaluate", handleEvaluate)
	})

	r.Get("/docs", handleDocs)

	return r
}

// requestID tags every request with a uuid and stores it for the
// logger middleware and handlers to pick up, mirroring the role
// google/uuid plays tagging requests in dekarrin-tunaq/server/api.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := logging.With(req.Context(), "request_id", id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		logging.FromContext(req.Context()).Info("request handled",
			"method", req.Method, "path", req.URL.Path, "duration", time.Since(start))
	})
}

// requireBearerJWT is middleware.Middleware-shaped auth, grounded on
// dekarrin-tunaq/server/token.go's AuthHandler: it rejects a request
// lacking a valid HS256 bearer token signed with secret. Unlike the
// teacher's version there is no per-user lookup — this service has no
// user model, only a shared signing secret.
func requireBearerJWT(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			tok, err := bearerToken(req)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			_, err = jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token: "+err.Error())
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func bearerToken(req *http.Request) (string, error) {
	header := strings.TrimSpace(req.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errMissingBearer
	}
	return strings.TrimSpace(parts[1]), nil
}

var errMissingBearer = &authError{"missing or malformed Authorization header"}

type authError struct{ msg string }

func (e *authError) Error() string { return e.msg }

// handleEvaluate accepts {"source": "..."} and returns a JSON object
// whose "lines" field is an array of {"kind": ..., "text": ...} lines,
// plus an "error" field when evaluation failed. Body parsing uses gjson/sjson instead of struct binding,
// since the request shape is a single string field.
func handleEvaluate(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	source := gjson.GetBytes(body, "source")
	if !source.Exists() {
		writeError(w, http.StatusBadRequest, "missing \"source\" field")
		return
	}

	lines, runErr := script.New(source.String()).Run()

	payload := `{"lines":[]}`
	for i, l := range lines {
		prefix := "lines." + strconv.Itoa(i)
		payload, _ = sjson.Set(payload, prefix+".kind", kindString(l.Kind))
		payload, _ = sjson.Set(payload, prefix+".text", l.Text)
	}
	if runErr != nil {
		payload, _ = sjson.Set(payload, "error", runErr.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	if runErr != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	w.Write([]byte(payload))
}

func kindString(k script.LineKind) string {
	switch k {
	case script.KindUpdate:
		return "update"
	case script.KindTestPass:
		return "test-pass"
	case script.KindTestFail:
		return "test-fail"
	default:
		return "output"
	}
}

func handleDocs(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html, err := renderDocsHTML()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Write([]byte(html))
}

func writeError(w http.ResponseWriter, status int, message string) {
	payload, _ := sjson.Set("{}", "error", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(payload))
}
