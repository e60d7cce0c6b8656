package homepage

import (
	"bytes"
	"fmt"
	"net"
	"strings"

	"github.com/yuin/goldmark"
)

// VendorHost is the vendor domain the device resolves. Seeing it in the Host
// header means the network's DNS override is in place.
const VendorHost = "eu.hamedata.com"

const (
	// MessageConfigured is shown when the page is reached through VendorHost.
	MessageConfigured = "Success! You've correctly configured your DNS. Your batteries should now work offline."
	// MessageUnconfigured is shown for any other host.
	MessageUnconfigured = "In order for your batteries to work offline you must configure your network's DNS. Check out the Wiki."
)

const pageMarkdown = `# MarstACK
![Logo](static/logo.png)
### Keep your solar battery online even when you're offline
---
*%s*

[MarstACK Github](https://www.github.com/fignew/MarstACK)

[MarstACK DNS Configuration Wiki](https://github.com/fignew/MarstACK/wiki)

[API Endpoint Documentation](/swagger/index.html)
`

const pageLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>MarstACK</title>
<link rel="icon" href="/favicon.ico">
</head>
<body>
%s</body>
</html>
`

// Hostname strips any port and brackets from a Host header value and lowercases it.
func Hostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

// Message selects the status line for the given Host header value.
func Message(host string) string {
	if Hostname(host) == VendorHost {
		return MessageConfigured
	}
	return MessageUnconfigured
}

// Pages holds the two pre-rendered variants of the landing page.
type Pages struct {
	configured   string
	unconfigured string
}

// RenderPages renders both landing page variants.
func RenderPages() (*Pages, error) {
	configured, err := render(MessageConfigured)
	if err != nil {
		return nil, err
	}
	unconfigured, err := render(MessageUnconfigured)
	if err != nil {
		return nil, err
	}
	return &Pages{configured: configured, unconfigured: unconfigured}, nil
}

// For returns the page for the given Host header value.
func (p *Pages) For(host string) string {
	if Message(host) == MessageConfigured {
		return p.configured
	}
	return p.unconfigured
}

func render(message string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(fmt.Sprintf(pageMarkdown, message)), &buf); err != nil {
		return "", fmt.Errorf("failed to render landing page: %w", err)
	}
	return fmt.Sprintf(pageLayout, buf.String()), nil
}
