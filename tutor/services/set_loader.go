package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/gateways/fetch"
	"github.com/magpietutor/magpie/tutor/logger"
	"github.com/magpietutor/magpie/tutor/magpie"
	"golang.org/x/sync/errgroup"
)

const (
	FormatIMF = "imf"
	FormatCTI = "cti"
)

var (
	ErrUnknownFormat = errors.New("unknown set format")
	ErrNoSpaces      = errors.New("spaces location without a configured bucket")
	ErrDuplicateSet  = errors.New("duplicate set code")
)

// SetSpec says where and in which format a set is stored.
type SetSpec struct {
	Code           cards.SetCode
	Format         string
	Location       string
	SigilsLocation string
}

// SetLoader fetches sets concurrently and upgrades them to magpie sets.
type SetLoader struct {
	http        fetch.Source
	spaces      fetch.Source
	concurrency int
}

// NewSetLoader creates a loader. spaces may be nil when no bucket is
// configured, and concurrency <= 0 means no limit.
func NewSetLoader(http, spaces fetch.Source, concurrency int) *SetLoader {
	return &SetLoader{
		http:        http,
		spaces:      spaces,
		concurrency: concurrency,
	}
}

// Load fetches every set. It fails if any set fails.
func (l *SetLoader) Load(ctx context.Context, specs []SetSpec) (*Registry, error) {
	sets := make([]*magpie.Set, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, spec := range specs {
		g.Go(func() error {
			start := time.Now()
			set, err := l.loadSet(ctx, spec)
			if err != nil {
				logger.LogFetch(spec.Code.String(), spec.Location, 0, time.Since(start), err)
				return fmt.Errorf("failed to load set %s: %w", spec.Code, err)
			}
			logger.LogFetch(spec.Code.String(), spec.Location, len(set.Cards), time.Since(start), nil)
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewRegistry(sets...)
}

func (l *SetLoader) loadSet(ctx context.Context, spec SetSpec) (*magpie.Set, error) {
	switch spec.Format {
	case FormatIMF:
		location := defaultString(spec.Location, fetch.CompetitiveURL)
		set, err := fetch.FetchIMF(ctx, l, location, spec.Code)
		if err != nil {
			return nil, err
		}
		return magpie.Upgrade(set), nil

	case FormatCTI:
		cardsLocation := defaultString(spec.Location, fetch.CTICardsURL)
		sigilsLocation := defaultString(spec.SigilsLocation, fetch.CTISigilsURL)
		set, err := fetch.FetchCTI(ctx, l, cardsLocation, sigilsLocation, spec.Code)
		if err != nil {
			return nil, err
		}
		return magpie.Upgrade(set), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, spec.Format)
}

// Fetch routes spaces:// locations to the bucket and everything else to
// the http source.
func (l *SetLoader) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, SpacesScheme) {
		if l.spaces == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSpaces, location)
		}
		return l.spaces.Fetch(ctx, location)
	}
	return l.http.Fetch(ctx, location)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
