package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/gateways/fetch"
	"github.com/magpietutor/magpie/tutor/logger"
	"github.com/magpietutor/magpie/tutor/services"
)

var ErrNotLoaded = errors.New("sets are not loaded")

func New(cfg Config, version string, commit string) *Tutor {
	return &Tutor{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

type Tutor struct {
	Cfg           Config
	Version       string
	Commit        string
	SpacesService *services.SpacesService
	Registry      *services.Registry
	Search        *services.SearchService
}

// SetupSpaces connects to the configured Spaces bucket, if any.
func (t *Tutor) SetupSpaces(ctx context.Context) error {
	if !t.Cfg.Spaces.Enabled() {
		return nil
	}

	spaces, err := services.NewSpacesService(ctx,
		t.Cfg.Spaces.Key,
		t.Cfg.Spaces.Secret,
		t.Cfg.Spaces.Region,
		t.Cfg.Spaces.Bucket,
		t.Cfg.Spaces.Root,
	)
	if err != nil {
		logger.LogError("Spaces setup failed", err, slog.String("bucket", t.Cfg.Spaces.Bucket))
		return fmt.Errorf("failed to set up spaces: %w", err)
	}
	t.SpacesService = spaces
	return nil
}

// LoadSets fetches every configured set and prepares the search service.
func (t *Tutor) LoadSets(ctx context.Context) error {
	specs, err := SetSpecs(t.Cfg.Sets)
	if err != nil {
		return err
	}

	var spaces fetch.Source
	if t.SpacesService != nil {
		spaces = t.SpacesService
	}
	loader := services.NewSetLoader(fetch.NewHTTPSource(t.Cfg.Fetch.Timeout()), spaces, t.Cfg.Fetch.Concurrency)

	start := time.Now()
	registry, err := loader.Load(ctx, specs)
	if err != nil {
		logger.LogError("Set loading failed", err, slog.Int("sets", len(specs)))
		return err
	}

	t.Registry = registry
	t.Search = services.NewSearchService(registry, services.SearchOptions{
		Threshold:  t.Cfg.Search.Threshold,
		MaxResults: t.Cfg.Search.MaxResults,
		MaxChars:   t.Cfg.Search.MaxChars,
		CacheSize:  t.Cfg.Search.CacheSize,
		DefaultSet: t.Cfg.Search.DefaultSet,
	})

	logger.LogSystem("Sets loaded",
		slog.Int("sets", registry.Len()),
		slog.Duration("took", time.Since(start)))
	return nil
}

// SearchMessage answers every request in text and renders the responses.
func (t *Tutor) SearchMessage(ctx context.Context, text string) ([]string, error) {
	if t.Search == nil {
		return nil, ErrNotLoaded
	}

	var out []string
	for _, resp := range t.Search.SearchMessage(ctx, text) {
		out = append(out, t.Search.Render(resp))
	}
	return out, nil
}

// SetSpecs validates the configured sets.
func SetSpecs(sets []SetConfig) ([]services.SetSpec, error) {
	specs := make([]services.SetSpec, 0, len(sets))
	for _, s := range sets {
		code, ok := cards.NewSetCode(strings.ToLower(s.Code))
		if !ok {
			return nil, fmt.Errorf("invalid set code %q: must be 3 ascii characters", s.Code)
		}
		format := strings.ToLower(string(s.Format))
		if format == "" {
			format = services.FormatIMF
		}
		specs = append(specs, services.SetSpec{
			Code:           code,
			Format:         format,
			Location:       s.URL,
			SigilsLocation: s.SigilsURL,
		})
	}
	return specs, nil
}
