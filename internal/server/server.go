// Package server exposes the package pipeline over HTTP for the demo UI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/loanpack/internal/manifest"
	"github.com/sells-group/loanpack/internal/model"
	"github.com/sells-group/loanpack/internal/pkgproc"
	"github.com/sells-group/loanpack/internal/summary"
	"github.com/sells-group/loanpack/pkg/xtract"
)

// maxUploadBytes bounds single-document uploads.
const maxUploadBytes = 32 << 20

// Processor is the package pipeline surface the server depends on.
type Processor interface {
	Process(ctx context.Context, packageID string) (*model.PackageResult, error)
	ProcessDocument(ctx context.Context, file []byte, fileName string) (*model.DocumentResult, error)
}

// Server handles the HTTP API.
type Server struct {
	processor Processor
	client    xtract.Client
	store     *manifest.Store
	origins   []string
}

// New creates a Server.
func New(processor Processor, client xtract.Client, store *manifest.Store, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{
		processor: processor,
		client:    client,
		store:     store,
		origins:   allowedOrigins,
	}
}

// Router builds the chi router with all routes configured.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/packages", s.listPackages)
		r.Get("/packages/{packageID}/documents", s.listPackageDocuments)
		r.Post("/process-package", s.processPackage)
		r.Post("/process-doc", s.processDoc)
		r.Post("/register-component", s.registerComponent)
		r.Get("/get-templates", s.getTemplates)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	zap.L().Info("starting server", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

type packageListing struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DocumentCount int    `json:"documentCount"`
}

func (s *Server) listPackages(w http.ResponseWriter, r *http.Request) {
	listings := make([]packageListing, 0, len(s.store.Packages))
	for _, p := range s.store.Packages {
		listings = append(listings, packageListing{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			DocumentCount: len(p.Documents),
		})
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) listPackageDocuments(w http.ResponseWriter, r *http.Request) {
	pkg, ok := s.store.PackageByID(chi.URLParam(r, "packageID"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown package id")
		return
	}
	writeJSON(w, http.StatusOK, pkg.Documents)
}

// processPackageResponse is a PackageResult plus the status assessment the UI
// renders.
type processPackageResponse struct {
	model.PackageResult
	Assessment summary.Assessment `json:"assessment"`
}

func (s *Server) processPackage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PackageID string `json:"packageId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PackageID == "" {
		writeError(w, http.StatusBadRequest, "packageId is required")
		return
	}

	result, err := s.processor.Process(r.Context(), req.PackageID)
	if err != nil {
		if errors.Is(err, pkgproc.ErrUnknownPackage) {
			writeError(w, http.StatusBadRequest, "invalid package id")
			return
		}
		zap.L().Error("package processing failed",
			zap.String("package_id", req.PackageID),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "package processing failed")
		return
	}

	writeJSON(w, http.StatusOK, processPackageResponse{
		PackageResult: *result,
		Assessment:    summary.Summarize(result.Summary, result.Documents),
	})
}

func (s *Server) processDoc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "file is empty")
		return
	}

	result, err := s.processor.ProcessDocument(r.Context(), data, header.Filename)
	if err != nil {
		zap.L().Error("document processing failed",
			zap.String("file", header.Filename),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "document processing failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) registerComponent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.client.RegisterComponent(r.Context(), xtract.RegisterComponentRequest{
		EnableClassifier: true,
		EnableExtraction: true,
		Templates:        s.store.Templates,
	})
	if err != nil {
		zap.L().Error("component registration failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "component registration failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.client.PredefinedTemplates(r.Context())
	if err != nil {
		zap.L().Error("template listing failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "failed to get predefined templates")
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestID tags each request with a generated id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

type requestIDKey struct{}

// RequestID returns the id assigned by the requestID middleware, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("request",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
