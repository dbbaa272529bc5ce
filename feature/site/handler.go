package site

import (
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"testsrv/core/contenttype"
	"testsrv/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// indexFiles are tried, in order, when a directory is requested.
var indexFiles = []string{"index.html", "index.htm"}

// Handler serves files from a read-only file system.
type Handler struct {
	fs     http.FileSystem
	types  *contenttype.Resolver
	browse bool
	logger *zap.Logger
}

// NewHandler creates a static file handler.
// types is consulted for every file's Content-Type.
func NewHandler(fsys http.FileSystem, types *contenttype.Resolver, browse bool, logger *zap.Logger) *Handler {
	return &Handler{
		fs:     fsys,
		types:  types,
		browse: browse,
		logger: logger,
	}
}

// RegisterRoutes mounts the handler for every path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.Serve)
}

// Serve answers GET and HEAD requests from the file system.
func (h *Handler) Serve(c *fiber.Ctx) error {
	method := c.Method()
	if method != fiber.MethodGet && method != fiber.MethodHead {
		return fiber.NewError(fiber.StatusNotImplemented, "Unsupported method ("+method+")")
	}

	// Decoded and normalized by fasthttp; cleanPath still rejects anything escaping the root.
	urlPath := string(c.Request().URI().Path())
	name, ok := cleanPath(urlPath)
	if !ok {
		logger.WithRayID(h.logger, c).Warn("Rejected path outside root", zap.String("path", urlPath))
		return fiber.ErrNotFound
	}

	f, err := h.fs.Open(name)
	if err != nil {
		return fiber.ErrNotFound
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fiber.ErrNotFound
	}

	if !info.IsDir() {
		if strings.HasSuffix(urlPath, "/") {
			f.Close()
			return fiber.ErrNotFound
		}
		return h.sendFile(c, f, info)
	}

	if !strings.HasSuffix(urlPath, "/") {
		f.Close()
		location := url.URL{Path: urlPath + "/", RawQuery: string(c.Request().URI().QueryString())}
		return c.Redirect(location.String(), fiber.StatusMovedPermanently)
	}

	for _, index := range indexFiles {
		idx, err := h.fs.Open(path.Join(name, index))
		if err != nil {
			continue
		}
		idxInfo, err := idx.Stat()
		if err != nil || idxInfo.IsDir() {
			idx.Close()
			continue
		}
		f.Close()
		return h.sendFile(c, idx, idxInfo)
	}

	defer f.Close()
	if !h.browse {
		return fiber.ErrNotFound
	}

	body, err := renderListing(f, urlPath)
	if err != nil {
		logger.WithRayID(h.logger, c).Warn("Failed to list directory", zap.String("path", urlPath), zap.Error(err))
		return fiber.NewError(fiber.StatusNotFound, "No permission to list directory")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

// sendFile writes the file response and takes ownership of f.
func (h *Handler) sendFile(c *fiber.Ctx, f http.File, info fs.FileInfo) error {
	modTime := info.ModTime()

	c.Set(fiber.HeaderContentType, h.types.Resolve(info.Name()))
	c.Set(fiber.HeaderLastModified, modTime.UTC().Format(http.TimeFormat))

	if notModified(c.Get(fiber.HeaderIfModifiedSince), modTime) {
		f.Close()
		c.Status(fiber.StatusNotModified)
		return nil
	}

	if c.Method() == fiber.MethodHead {
		f.Close()
		c.Response().Header.SetContentLength(int(info.Size()))
		return nil
	}

	// fasthttp closes the stream once the body is written.
	return c.SendStream(f, int(info.Size()))
}

// cleanPath maps a URL path to a rooted file system name.
// Paths containing ".." segments or NUL bytes are refused.
func cleanPath(urlPath string) (string, bool) {
	if strings.IndexByte(urlPath, 0) >= 0 || strings.Contains(urlPath, "\\") {
		return "", false
	}
	for _, segment := range strings.Split(urlPath, "/") {
		if segment == ".." {
			return "", false
		}
	}
	return path.Clean("/" + urlPath), true
}

func notModified(header string, modTime time.Time) bool {
	if header == "" || modTime.IsZero() {
		return false
	}
	since, err := http.ParseTime(header)
	if err != nil {
		return false
	}
	return !modTime.Truncate(time.Second).After(since)
}
