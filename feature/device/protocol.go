package device

import "github.com/gofiber/fiber/v2"

// Route describes one emulated vendor endpoint.
type Route struct {
	Method      string
	Path        string
	ContentType string
	Summary     string
}

// The endpoints the battery firmware calls. Paths are literal, including case.
var (
	RouteReport = Route{
		Method:      fiber.MethodGet,
		Path:        "/prod/api/v1/setB2500Report",
		ContentType: fiber.MIMEApplicationJSON,
		Summary:     "Periodic battery status report",
	}
	RouteDateInfo = Route{
		Method:      fiber.MethodGet,
		Path:        "/app/neng/getDateInfoeu.php",
		ContentType: fiber.MIMETextPlainCharsetUTF8,
		Summary:     "Clock synchronisation",
	}
	RoutePutErrInfo = Route{
		Method:      fiber.MethodPost,
		Path:        "/app/Solar/puterrinfo.php",
		ContentType: fiber.MIMETextPlainCharsetUTF8,
		Summary:     "Error report upload",
	}
	RouteGetErrInfo = Route{
		Method:      fiber.MethodGet,
		Path:        "/app/Solar/puterrinfo.php",
		ContentType: fiber.MIMETextPlainCharsetUTF8,
		Summary:     "Error report query",
	}
	RouteRealtimeSoc = Route{
		Method:      fiber.MethodGet,
		Path:        "/ems/api/v1/getRealtimeSoc",
		ContentType: fiber.MIMEApplicationJSON,
		Summary:     "Real-time state of charge",
	}
)

// Vendor protocol literals. Their meaning is unknown; they are reproduced as observed.
const (
	// DateInfoSuffix trails every clock answer.
	DateInfoSuffix = "_04_0_0_0"
	// ErrInfoPosted answers an uploaded error report.
	ErrInfoPosted = "_1"
	// ErrInfoQueried answers the rarely seen GET on the error report path.
	ErrInfoQueried = "_2"
)

// ReportResponse is the acknowledgement for setB2500Report.
type ReportResponse struct {
	Code int    `json:"code" example:"1"`
	Msg  string `json:"msg" example:"ok"`
}

// SocData is the state of charge payload. Zero values are what the device expects.
type SocData struct {
	Soc    int `json:"soc" example:"0"`
	TimeNo int `json:"time_no" example:"0"`
}

// SocResponse is the answer for getRealtimeSoc.
type SocResponse struct {
	Code int     `json:"code" example:"1"`
	Show int     `json:"show" example:"0"`
	Msg  string  `json:"msg" example:"ok"`
	Data SocData `json:"data"`
}
