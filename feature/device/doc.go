// Package device emulates the vendor cloud endpoints the battery firmware calls.
//
// Every answer is a constant, except the clock query, which depends only on the wall
// clock and the configured zone. Query parameters and bodies are accepted without
// validation and only show up in debug logs. Content types are fixed per route because
// some firmware parses responses strictly.
//
// # HTTP Endpoints
//
//   - GET  /prod/api/v1/setB2500Report : {"code":1,"msg":"ok"}
//   - GET  /app/neng/getDateInfoeu.php : _YYYY_MM_DD_HH_MM_SS_04_0_0_0 (text/plain)
//   - POST /app/Solar/puterrinfo.php   : _1 (text/plain)
//   - GET  /app/Solar/puterrinfo.php   : _2 (text/plain)
//   - GET  /ems/api/v1/getRealtimeSoc  : {"code":1,"show":0,"msg":"ok","data":{"soc":0,"time_no":0}}
package device
