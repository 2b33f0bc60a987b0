package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for document resources.
	uriScheme = "sercha-bot://"

	documentsPrefix = uriScheme + "documents/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Every indexed document with its origin",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentsPrefix + "{fingerprint}",
		Name:        "document-content",
		Description: "Extracted text of a document",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// documentInfo is one entry of the documents listing.
type documentInfo struct {
	Fingerprint string `json:"fingerprint"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	HasText     bool   `json:"has_text"`
	URI         string `json:"uri"`
}

// handleDocumentsResource lists the whole index.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.ports.Index.EnsureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	docs, err := s.ports.Index.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]documentInfo, len(docs))
	for i := range docs {
		infos[i] = documentInfo{
			Fingerprint: docs[i].Fingerprint,
			Name:        docs[i].Name,
			Origin:      string(docs[i].Origin),
			HasText:     docs[i].Content != "",
			URI:         documentURI(docs[i].Fingerprint),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the extracted text of one document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	fingerprint := extractFingerprint(req.Params.URI)
	if fingerprint == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if err := s.ports.Index.EnsureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	doc, err := s.ports.Index.Get(ctx, fingerprint)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}

func documentURI(fingerprint string) string {
	return documentsPrefix + fingerprint
}

// extractFingerprint pulls the fingerprint out of sercha-bot://documents/{fingerprint}.
func extractFingerprint(uri string) string {
	fp, ok := strings.CutPrefix(uri, documentsPrefix)
	if !ok || !domain.IsFingerprint(fp) {
		return ""
	}
	return fp
}
