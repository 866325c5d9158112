// Package models provides request and response structures of the HTTP API.
package models

import "levelshort/internal/domain/models"

// RegisterTenantRequest - body of POST /api/tenants.
type RegisterTenantRequest struct {
	// Site: registered top-level site of the tenant, e.g. "github.com".
	Site string `json:"site"`
	// Tier: subscription tier name, e.g. "FREE".
	Tier string `json:"tier"`
}

// RegisterTenantResponse - body returned after tenant registration.
type RegisterTenantResponse struct {
	TenantID string `json:"tenant_id"`
	Site     string `json:"site"`
	Tier     string `json:"tier"`
	APIKey   string `json:"api_key"`
}

// EncodeURLRequest - body of POST /api/urls.
type EncodeURLRequest struct {
	URL string `json:"url"`
}

// EncodeURLResponse - body returned after a URL admission: the updated
// tenant record plus the short-link base rendered from the site hash.
type EncodeURLResponse struct {
	ShortBase string               `json:"short_base"`
	Record    *models.TenantRecord `json:"record"`
}

// DecodeResponse - body of GET /api/urls/decode.
type DecodeResponse struct {
	Level    int    `json:"level"`
	Category string `json:"category"`
	Code     string `json:"code"`
	Value    string `json:"value"`
}

// ErrorResponse - uniform error body carrying the error kind and the
// structured violation fields when present.
type ErrorResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Category  string `json:"category,omitempty"`
	Level     int    `json:"level,omitempty"`
	Attempted int    `json:"attempted,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}
