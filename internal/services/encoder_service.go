// Package services contains the encoding orchestrator: the component that
// takes a raw URL through validation, parsing, site alignment, quota checks
// and finally commits the new codes into the tenant record.
package services

import (
	"context"
	"strings"

	"github.com/9ssi7/nanoid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
	"levelshort/internal/idcodec"
	"levelshort/internal/quota"
	"levelshort/internal/repository"
	"levelshort/internal/subscription"
	"levelshort/internal/tenantstore"
	"levelshort/internal/urlparse"
)

// EncoderService - operations of the encoding core exposed to the web layer.
type EncoderService interface {
	// RegisterTenant creates a tenant record for a site and tier and
	// returns it together with a freshly minted API key.
	RegisterTenant(ctx context.Context, site, tierName string) (*models.TenantRecord, string, error)
	// AddURL admits a URL into the tenant dictionary. Either every new
	// value of the URL is committed or none.
	AddURL(ctx context.Context, tenantID, rawURL string) (*models.TenantRecord, error)
	// DecodeValue resolves a code back into its natural value.
	DecodeValue(ctx context.Context, tenantID string, level int, category, code string) (string, error)
	// GetTenant returns the current tenant record.
	GetTenant(ctx context.Context, tenantID string) (*models.TenantRecord, error)
	// Ping reports repository availability.
	Ping(ctx context.Context) error
}

type encoder struct {
	repo  repository.TenantRepository
	sugar *zap.SugaredLogger
	locks *tenantLocks
}

// NewEncoderService creates the orchestrator on top of a tenant repository.
func NewEncoderService(repo repository.TenantRepository, sugar *zap.SugaredLogger) EncoderService {
	return &encoder{
		repo:  repo,
		sugar: sugar,
		locks: newTenantLocks(),
	}
}

// RegisterTenant validates the tier, mints the tenant identity and persists
// an empty record. The site hash is minted later, on first URL registration.
func (e *encoder) RegisterTenant(ctx context.Context, site, tierName string) (*models.TenantRecord, string, error) {
	tier, err := subscription.GetSubscription(tierName)
	if err != nil {
		return nil, "", err
	}

	rec := &models.TenantRecord{
		TenantID: uuid.NewString(),
		Site:     canonicalSite(site),
		Tier:     tier.Name,
		Levels:   []*models.LevelDictionary{},
	}
	if err := e.repo.Save(ctx, rec); err != nil {
		return nil, "", err
	}

	apiKey, err := nanoid.New()
	if err != nil {
		return nil, "", err
	}

	e.sugar.Infow("tenant registered", "tenant_id", rec.TenantID, "site", rec.Site, "tier", rec.Tier)
	return rec, apiKey, nil
}

// AddURL runs the admission state machine: Validated -> SiteAligned ->
// QuotaChecked -> Committed. The load-check-commit-persist section is
// serialized per tenant; two concurrent encodes for the same tenant never
// interleave, so codes are minted from a consistent snapshot.
func (e *encoder) AddURL(ctx context.Context, tenantID, rawURL string) (*models.TenantRecord, error) {
	if err := urlparse.Validate(rawURL); err != nil {
		return nil, err
	}

	levels, err := urlparse.Parse(normalizeWWW(rawURL))
	if err != nil {
		return nil, err
	}

	unlock := e.locks.lock(tenantID)
	defer unlock()

	rec, err := e.repo.Load(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if !sitesAligned(levels[0].LevelName, rec.Site) {
		return nil, apperrors.New(apperrors.KindSiteMisalignment,
			"URL site %q does not match registered site %q", levels[0].LevelName, rec.Site)
	}

	tier, err := subscription.GetSubscription(rec.Tier)
	if err != nil {
		return nil, err
	}

	// first URL for this tenant: mint the site hash from the persisted
	// tenant ordinal
	if rec.SiteHash == "" {
		ord, err := e.repo.NextOrdinal(ctx)
		if err != nil {
			return nil, err
		}
		rec.SiteHash = idcodec.Encode(ord)
	}

	store := tenantstore.New(rec)
	if err := quota.Check(store, levels, tier); err != nil {
		return nil, err
	}

	for i := 1; i < len(levels); i++ {
		for _, category := range models.Categories() {
			for _, value := range levels[i].Values(category) {
				if _, err := store.AddValue(i, category, value); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := e.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	e.sugar.Infow("url encoded", "tenant_id", tenantID, "levels", len(levels)-1)
	return rec, nil
}

// DecodeValue is the read-only dual of AddURL.
func (e *encoder) DecodeValue(ctx context.Context, tenantID string, level int, category, code string) (string, error) {
	cat, ok := models.ParseCategory(category)
	if !ok {
		return "", &apperrors.Error{Kind: apperrors.KindCodeNotFound, Code: code, Level: level,
			Message: "unknown category " + category}
	}

	rec, err := e.repo.Load(ctx, tenantID)
	if err != nil {
		return "", err
	}

	return tenantstore.New(rec).Lookup(level, cat, code)
}

func (e *encoder) GetTenant(ctx context.Context, tenantID string) (*models.TenantRecord, error) {
	return e.repo.Load(ctx, tenantID)
}

func (e *encoder) Ping(ctx context.Context) error {
	return e.repo.Ping(ctx)
}

// normalizeWWW inserts the www. prefix after the scheme when absent, per
// the tenant-facing link convention.
func normalizeWWW(raw string) string {
	for _, scheme := range []string{"https://", "http://"} {
		rest, found := strings.CutPrefix(raw, scheme)
		if !found {
			continue
		}
		if !strings.HasPrefix(rest, "www.") {
			rest = "www." + rest
		}
		return scheme + rest
	}
	return raw
}

// canonicalSite lower-cases a registered site and drops the www. prefix.
func canonicalSite(site string) string {
	return strings.TrimPrefix(strings.ToLower(site), "www.")
}

// sitesAligned compares the URL's top-level site with the registered one,
// case-insensitively and ignoring the www. prefix.
func sitesAligned(urlSite, registered string) bool {
	return strings.EqualFold(
		strings.TrimPrefix(strings.ToLower(urlSite), "www."),
		canonicalSite(registered),
	)
}
