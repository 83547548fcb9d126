// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docflow. It lets AI assistants check document status and work the
// approval queue.
package mcp

import "errors"

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
