package homepage

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

const faviconType = "image/x-icon"

// Handler serves the landing page and its assets.
type Handler struct {
	pages   *Pages
	favicon []byte
}

// NewHandler creates a new HTTP handler.
func NewHandler(pages *Pages, favicon []byte) *Handler {
	return &Handler{pages: pages, favicon: favicon}
}

// RegisterRoutes registers the landing page, favicon and static routes.
// The page and the icon are GET only so HEAD and OPTIONS end up as 405.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Add(fiber.MethodGet, "/favicon.ico", h.HandleFavicon)
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(Static()),
	}))
	app.Add(fiber.MethodGet, "/", h.HandleHome)
}

// HandleHome renders the landing page.
// @Summary Landing Page
// @Description Shows whether the request arrived through the vendor domain, i.e. whether DNS is configured.
// @Tags homepage
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(h.pages.For(c.Hostname()))
}

// HandleFavicon serves the embedded icon.
func (h *Handler) HandleFavicon(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, faviconType)
	return c.Send(h.favicon)
}
