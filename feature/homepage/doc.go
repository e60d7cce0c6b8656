// Package homepage serves the operator-facing landing page.
//
// The page is cosmetic except for one line: when the Host header is the vendor domain
// (eu.hamedata.com) it confirms the DNS override works, otherwise it explains that DNS
// still has to be configured. Both variants are rendered from Markdown with goldmark
// at startup.
//
// # HTTP Endpoints
//
//   - GET /            : landing page (text/html)
//   - GET /favicon.ico : icon
//   - GET /static/*    : embedded assets (logo)
package homepage
