package handler

import (
	"context"
	"mime"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"docfs/internal/filesystem"
	"docfs/internal/model"
	"docfs/internal/storage"
)

// healthProbePath is a path under the root that is never written; probing it
// only checks that the backend answers.
const healthProbePath = ".docfs-health"

// EntriesResponse is the body of GET /entries.
type EntriesResponse struct {
	Path    string   `json:"path"`
	Entries []string `json:"entries"`
}

// ExistsResponse is the body of GET /exists.
type ExistsResponse struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Every client
// path goes through paths before it reaches fs.
func RegisterRoutes(app *fiber.App, backend storage.Backend, fs filesystem.FileSystem, paths PathResolver) {
	app.Get("/health", HealthCheck(backend, paths))
	app.Get("/healthz", LivenessProbe())

	app.Put("/files", WriteFile(fs, paths))
	app.Delete("/files", DeleteFile(fs, paths))
	app.Get("/entries", ListEntries(fs, paths))
	app.Get("/exists", PathExists(fs, paths))
	app.Get("/documents", GetDocument(fs, paths))
}

// HealthCheck godoc
// @Summary Backend health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(backend storage.Backend, paths PathResolver) fiber.Handler {
	probe := filepath.Join(paths.Root(), healthProbePath)
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if _, err := backend.Stat(ctx, probe); err != nil && !storage.IsNotFound(err) {
			return errBackendUnavailable
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// WriteFile godoc
// @Summary Write a document
// @Description Stores the request body as <dir>/<name> under the document root, replacing any existing file.
// @Tags files
// @Accept octet-stream
// @Produce json
// @Param dir query string true "Target directory, rooted at /"
// @Param name query string true "File name"
// @Success 201 {object} model.WriteFileResult
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /files [put]
func WriteFile(fs filesystem.FileSystem, paths PathResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dir, err := paths.Resolve(c.Query("dir"))
		if err != nil {
			return err
		}

		doc, err := model.NewDocument(c.Query("name"), append([]byte{}, c.Body()...))
		if err != nil {
			// Let the adapter decide: it reports the directory before the name.
			doc = model.NullDocument()
		}

		res := fs.Write(c.UserContext(), dir, doc)
		if res.HadError() {
			return writeRejected(res)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DeleteFile godoc
// @Summary Delete a file or directory tree
// @Description Missing paths are ignored. The document root itself cannot be removed.
// @Tags files
// @Param path query string true "Path to remove, rooted at /"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /files [delete]
func DeleteFile(fs filesystem.FileSystem, paths PathResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := paths.Resolve(c.Query("path"))
		if err != nil {
			return err
		}
		if path == paths.Root() {
			return errInvalidPath
		}
		fs.Delete(c.UserContext(), path)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListEntries godoc
// @Summary List a directory
// @Tags entries
// @Produce json
// @Param path query string true "Directory path, rooted at /"
// @Success 200 {object} EntriesResponse
// @Failure 400 {object} errorPayload
// @Router /entries [get]
func ListEntries(fs filesystem.FileSystem, paths PathResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := paths.Resolve(c.Query("path"))
		if err != nil {
			return err
		}
		return c.JSON(EntriesResponse{Path: c.Query("path"), Entries: fs.List(c.UserContext(), path)})
	}
}

// PathExists godoc
// @Summary Check whether a path exists
// @Tags entries
// @Produce json
// @Param path query string true "File or directory path, rooted at /"
// @Success 200 {object} ExistsResponse
// @Failure 400 {object} errorPayload
// @Router /exists [get]
func PathExists(fs filesystem.FileSystem, paths PathResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := paths.Resolve(c.Query("path"))
		if err != nil {
			return err
		}
		return c.JSON(ExistsResponse{Path: c.Query("path"), Exists: fs.Exists(c.UserContext(), path)})
	}
}

// GetDocument godoc
// @Summary Read a document
// @Tags files
// @Produce octet-stream
// @Param path query string true "File path, rooted at /"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents [get]
func GetDocument(fs filesystem.FileSystem, paths PathResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := paths.Resolve(c.Query("path"))
		if err != nil {
			return err
		}
		doc := fs.GetDocument(c.UserContext(), path)
		if doc.IsNull() {
			return errDocumentNotFound
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": doc.Name()}))
		c.Set("X-Document-Size", strconv.Itoa(doc.Size()))
		return c.Status(fiber.StatusOK).Send(doc.Bytes())
	}
}
