package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naufalhakm/rekap-perjadin/internal"
	"github.com/naufalhakm/rekap-perjadin/internal/auth"
)

var _ = Describe("Auth Handler", func() {
	var (
		handler *auth.Handler
		logger  *slog.Logger
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	Describe("CreateSession", func() {
		It("answers 200 with a session id and token", func() {
			tokens := auth.NewJWTTokenGenerator("test-secret-that-is-long-enough-for-hs256", time.Hour)
			handler = auth.NewHandler(auth.NewService(tokens, logger))

			req := httptest.NewRequest(http.MethodPost, "/session", nil)
			rec := httptest.NewRecorder()
			handler.CreateSession(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var body struct {
				SessionID *string `json:"session_id"`
				Token     string  `json:"token"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.SessionID).NotTo(BeNil())
			Expect(*body.SessionID).NotTo(BeEmpty())
			Expect(body.Token).NotTo(BeEmpty())
		})

		It("still answers 200 with a null session id when signing fails", func() {
			handler = auth.NewHandler(auth.NewService(&auth.JWTTokenGenerator{}, logger))

			req := httptest.NewRequest(http.MethodPost, "/session", nil)
			rec := httptest.NewRecorder()
			handler.CreateSession(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var body struct {
				SessionID *string `json:"session_id"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.SessionID).To(BeNil())
		})
	})

	Describe("SessionMiddleware", func() {
		var tokens *auth.JWTTokenGenerator

		BeforeEach(func() {
			tokens = auth.NewJWTTokenGenerator("test-secret-that-is-long-enough-for-hs256", time.Hour)
			handler = auth.NewHandler(auth.NewService(tokens, logger))
		})

		It("stamps the session id from a valid bearer token", func() {
			token, err := tokens.Generate("session-abc")
			Expect(err).NotTo(HaveOccurred())

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = internal.SessionIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			handler.SessionMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			Expect(seen).To(Equal("session-abc"))
		})

		It("passes requests without a token through with no identity", func() {
			var seen string
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				seen = internal.SessionIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			handler.SessionMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			Expect(called).To(BeTrue())
			Expect(seen).To(BeEmpty())
		})

		It("ignores malformed bearer tokens instead of rejecting", func() {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			rec := httptest.NewRecorder()
			handler.SessionMiddleware(next).ServeHTTP(rec, req)

			Expect(called).To(BeTrue())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
