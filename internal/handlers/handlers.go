// Package handlers contains the HTTP controller of the shortener API and
// the mapping of core error kinds onto HTTP statuses. The encoding core
// itself knows nothing about HTTP.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"levelshort/internal/apperrors"
	"levelshort/internal/config"
	models "levelshort/internal/domain/models/json"
	"levelshort/internal/services"
	"levelshort/internal/subscription"
	"levelshort/internal/tenant"
)

// Controller handles the HTTP endpoints of the shortener API.
type Controller struct {
	conf    *config.Config
	service services.EncoderService
	session tenant.SessionService
	sugar   *zap.SugaredLogger
}

// NewController creates the controller.
func NewController(conf *config.Config, service services.EncoderService, session tenant.SessionService, sugar *zap.SugaredLogger) *Controller {
	return &Controller{
		conf:    conf,
		service: service,
		session: session,
		sugar:   sugar,
	}
}

// RegisterTenant handles POST /api/tenants.
func (con *Controller) RegisterTenant() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		var body models.RegisterTenantRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(res, "Bad Request", http.StatusBadRequest)
			return
		}

		rec, apiKey, err := con.service.RegisterTenant(req.Context(), body.Site, body.Tier)
		if err != nil {
			con.writeError(res, err)
			return
		}

		if err := con.session.SetTenantIDCookie(res, rec.TenantID); err != nil {
			con.sugar.Errorf("set tenant cookie: %v", err)
		}

		con.writeJSON(res, http.StatusCreated, models.RegisterTenantResponse{
			TenantID: rec.TenantID,
			Site:     rec.Site,
			Tier:     rec.Tier,
			APIKey:   apiKey,
		})
	}
}

// EncodeURL handles POST /api/urls.
func (con *Controller) EncodeURL() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tenantID := tenantIDFromContext(req.Context())
		if tenantID == "" {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var body models.EncodeURLRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(res, "Bad Request", http.StatusBadRequest)
			return
		}

		rec, err := con.service.AddURL(req.Context(), tenantID, body.URL)
		if err != nil {
			con.writeError(res, err)
			return
		}

		con.writeJSON(res, http.StatusCreated, models.EncodeURLResponse{
			ShortBase: con.conf.BaseURL + "/" + rec.SiteHash,
			Record:    rec,
		})
	}
}

// DecodeCode handles GET /api/urls/decode.
func (con *Controller) DecodeCode() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tenantID := tenantIDFromContext(req.Context())
		if tenantID == "" {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		level, err := strconv.Atoi(req.URL.Query().Get("level"))
		if err != nil || level < 1 {
			http.Error(res, "Bad Request", http.StatusBadRequest)
			return
		}
		category := req.URL.Query().Get("category")
		code := req.URL.Query().Get("code")

		value, err := con.service.DecodeValue(req.Context(), tenantID, level, category, code)
		if err != nil {
			con.writeError(res, err)
			return
		}

		con.writeJSON(res, http.StatusOK, models.DecodeResponse{
			Level:    level,
			Category: category,
			Code:     code,
			Value:    value,
		})
	}
}

// GetTenant handles GET /api/tenants/me.
func (con *Controller) GetTenant() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tenantID := tenantIDFromContext(req.Context())
		if tenantID == "" {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		rec, err := con.service.GetTenant(req.Context(), tenantID)
		if err != nil {
			con.writeError(res, err)
			return
		}
		con.writeJSON(res, http.StatusOK, rec)
	}
}

// GetSubscriptionTier handles GET /api/subscriptions/{name}.
func (con *Controller) GetSubscriptionTier() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		tier, err := subscription.GetSubscription(chi.URLParam(req, "name"))
		if err != nil {
			con.writeError(res, err)
			return
		}
		con.writeJSON(res, http.StatusOK, tier)
	}
}

// PingHandler handles GET /ping.
func (con *Controller) PingHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if err := con.service.Ping(req.Context()); err != nil {
			http.Error(res, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		res.WriteHeader(http.StatusOK)
	}
}

func (con *Controller) writeJSON(res http.ResponseWriter, status int, payload any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(payload); err != nil {
		con.sugar.Errorf("write response: %v", err)
	}
}

// writeError translates core error kinds into HTTP statuses and a uniform
// JSON body carrying the structured violation fields.
func (con *Controller) writeError(res http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsError(err)
	if !ok {
		con.sugar.Errorf("internal error: %v", err)
		http.Error(res, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperrors.KindInvalidURL, apperrors.KindNoExistingSubscription:
		status = http.StatusBadRequest
	case apperrors.KindSiteMisalignment:
		status = http.StatusConflict
	case apperrors.KindSubscriptionViolated:
		status = http.StatusForbidden
	case apperrors.KindCodeNotFound, apperrors.KindTenantNotFound:
		status = http.StatusNotFound
	case apperrors.KindNonConsecutiveLevel:
		// logic fault, not a user input error
		con.sugar.Errorf("invariant violation: %v", appErr)
	}

	con.writeJSON(res, status, models.ErrorResponse{
		Kind:      string(appErr.Kind),
		Message:   appErr.Error(),
		Category:  appErr.Category,
		Level:     appErr.Level,
		Attempted: appErr.Attempted,
		Limit:     appErr.Limit,
	})
}
