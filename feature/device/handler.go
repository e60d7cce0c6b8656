package device

import (
	"marstack/core/logger"
	"marstack/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxLoggedBody caps how much of an uploaded payload reaches the debug log.
const maxLoggedBody = 4096

// Handler handles HTTP requests from the battery.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type endpoint struct {
	route  Route
	handle fiber.Handler
}

func (h *Handler) endpoints() []endpoint {
	return []endpoint{
		{RouteReport, h.HandleReport},
		{RouteDateInfo, h.HandleDateInfo},
		{RoutePutErrInfo, h.HandlePutErrInfo},
		{RouteGetErrInfo, h.HandleGetErrInfo},
		{RouteRealtimeSoc, h.HandleRealtimeSoc},
	}
}

// Routes returns the emulated endpoints in registration order.
func Routes() []Route {
	eps := (&Handler{}).endpoints()
	routes := make([]Route, 0, len(eps))
	for _, ep := range eps {
		routes = append(routes, ep.route)
	}
	return routes
}

// RegisterRoutes registers the device routes.
// Each route answers only its own method; HEAD included, anything else on a
// known path is a 405.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	for _, ep := range h.endpoints() {
		app.Add(ep.route.Method, ep.route.Path, ep.handle)
	}
}

// HandleReport acknowledges a battery status report.
// @Summary Battery Report
// @Description Emulates the vendor report endpoint. Query parameters are logged at debug level and otherwise ignored.
// @Tags device
// @Produce json
// @Success 200 {object} device.ReportResponse
// @Router /prod/api/v1/setB2500Report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	h.logQuery(c, RouteReport)
	return c.JSON(h.service.Report())
}

// HandleDateInfo answers the device clock synchronisation.
// @Summary Date Info
// @Description Returns the current local time as _YYYY_MM_DD_HH_MM_SS_04_0_0_0.
// @Tags device
// @Produce plain
// @Success 200 {string} string "_2024_01_05_03_07_09_04_0_0_0"
// @Router /app/neng/getDateInfoeu.php [get]
func (h *Handler) HandleDateInfo(c *fiber.Ctx) error {
	h.logQuery(c, RouteDateInfo)
	return sendText(c, h.service.DateInfo())
}

// HandlePutErrInfo accepts an error report upload.
// @Summary Upload Error Info
// @Description Accepts an error report. The body is logged at debug level and otherwise ignored.
// @Tags device
// @Accept plain
// @Produce plain
// @Success 200 {string} string "_1"
// @Router /app/Solar/puterrinfo.php [post]
func (h *Handler) HandlePutErrInfo(c *fiber.Ctx) error {
	h.logBody(c, RoutePutErrInfo)
	return sendText(c, ErrInfoPosted)
}

// HandleGetErrInfo answers the rare GET on the error report path.
// @Summary Query Error Info
// @Description Rarely called by devices. Any body is logged at debug level and otherwise ignored.
// @Tags device
// @Produce plain
// @Success 200 {string} string "_2"
// @Router /app/Solar/puterrinfo.php [get]
func (h *Handler) HandleGetErrInfo(c *fiber.Ctx) error {
	h.logBody(c, RouteGetErrInfo)
	return sendText(c, ErrInfoQueried)
}

// HandleRealtimeSoc answers the state of charge query.
// @Summary Realtime SOC
// @Description Returns a fixed state of charge document with zero values.
// @Tags device
// @Produce json
// @Success 200 {object} device.SocResponse
// @Router /ems/api/v1/getRealtimeSoc [get]
func (h *Handler) HandleRealtimeSoc(c *fiber.Ctx) error {
	h.logQuery(c, RouteRealtimeSoc)
	return c.JSON(h.service.RealtimeSoc())
}

func (h *Handler) logQuery(c *fiber.Ctx, r Route) {
	l := logger.WithRayID(h.service.logger, c)
	if ce := l.Check(zapcore.DebugLevel, "Query params"); ce != nil {
		ce.Write(
			zap.String("method", r.Method),
			zap.String("path", r.Path),
			zap.Any("params", utils.CloneParams(c.Queries())),
		)
	}
}

func (h *Handler) logBody(c *fiber.Ctx, r Route) {
	l := logger.WithRayID(h.service.logger, c)
	if ce := l.Check(zapcore.DebugLevel, "Request body"); ce != nil {
		ce.Write(
			zap.String("method", r.Method),
			zap.String("path", r.Path),
			zap.String("body", utils.Truncate(utils.DecodeBody(c.Body()), maxLoggedBody)),
		)
	}
}

func sendText(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(body)
}
