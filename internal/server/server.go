package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"waterbutt/internal/claims"
	"waterbutt/internal/storage"
	"waterbutt/internal/utils"
	"waterbutt/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	claims    *claims.Service
	photos    *storage.PhotoStorage
	templates *template.Template

	cookie *securecookie.SecureCookie

	// Last good summary. Kept so a transient fetch failure never blanks
	// the rendered gauge.
	summaryMu sync.RWMutex
	summary   *types.Summary

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	claimsService *claims.Service,
	photos *storage.PhotoStorage,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger: logger,
		config: config,
		claims: claimsService,
		photos: photos,
		cookie: securecookie.New(hashKey, blockKey),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := s.loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler, mostly for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/submissions", s.handleSubmit, http.MethodPost)

	r.HandleFunc("/moderation", s.handleModeration, http.MethodGet)
	r.HandleFunc("/moderation/:id/approve", s.handleApprove, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func (s *Service) loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"litres": func(l *int64) int64 {
			return utils.PtrInt64(l)
		},
		"photoURL": func(key string) string {
			return s.photos.PublicURL(key)
		},
		"pct": func(p float64) string {
			if p > 0 && p < 0.01 {
				return fmt.Sprintf("%.4f", p)
			}
			return fmt.Sprintf("%.2f", p)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) currentSummary() *types.Summary {
	s.summaryMu.RLock()
	defer s.summaryMu.RUnlock()
	return s.summary
}

func (s *Service) storeSummary(summary *types.Summary) {
	s.summaryMu.Lock()
	s.summary = summary
	s.summaryMu.Unlock()
}

// refreshSummary re-reads and re-aggregates the full submission set. On a
// fetch failure the previous summary is returned alongside the error.
func (s *Service) refreshSummary(ctx context.Context) (*types.Summary, error) {
	summary, err := s.claims.Refresh(ctx)
	if err != nil {
		return s.currentSummary(), err
	}

	s.storeSummary(summary)
	return summary, nil
}
