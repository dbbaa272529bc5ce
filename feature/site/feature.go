package site

import (
	"net/http"
	"os"

	"testsrv/core/contenttype"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the static site through the loader.
type Feature struct {
	root    string
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the site feature serving the absolute directory root.
func NewFeature(cfg Config, root string, types *contenttype.Resolver, logger *zap.Logger) *Feature {
	return &Feature{
		root:    root,
		handler: NewHandler(http.Dir(root), types, cfg.Browse, logger),
		logger:  logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "site"
}

// IsEnabled always returns true; the site is the server's only content.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load mounts the static handler. A missing root is not fatal: every request answers 404.
func (f *Feature) Load(app fiber.Router) error {
	if info, err := os.Stat(f.root); err != nil || !info.IsDir() {
		f.logger.Warn("Site root is not a directory, all requests will return 404", zap.String("root", f.root))
	} else {
		f.logger.Info("Serving directory", zap.String("root", f.root))
	}

	f.handler.RegisterRoutes(app)
	return nil
}
