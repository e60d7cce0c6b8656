// Package server holds the HTTP server configuration and builds the fiber application.
//
// # Configuration
//
// Config defines the bind host and port. ProxyConfig carries the trusted reverse proxy
// list (FORWARDED_ALLOW_IPS); when it is set, the client address is taken from
// X-Forwarded-For, and "*" trusts every peer.
//
// # Middleware Order
//
//  1. RayID: tags the request for log correlation.
//  2. Unmatched: logs 404/405 outcomes so unknown device calls can be discovered.
//  3. Metrics: counts requests per route (optional).
//
// Features are loaded last, so the device routes sit behind the whole chain.
package server
