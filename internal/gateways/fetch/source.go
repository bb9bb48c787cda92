package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

// Set is a set decoded from a source format, before it is upgraded to the
// variant the application works with.
type (
	Set  = cards.Set[struct{}, struct{}]
	Card = cards.Card[struct{}, struct{}]
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidSpAtk     = errors.New("invalid special attack")
	ErrInvalidMox       = errors.New("invalid mox color")
	ErrInvalidCost      = errors.New("invalid cost format")
	ErrUnknownCost      = errors.New("unknown cost")
	ErrUnknownRarity    = errors.New("unknown rarity")
	ErrUnknownTemple    = errors.New("unknown temple")
)

// Source opens the raw document stored at a location.
type Source interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// HTTPSource fetches documents over HTTP.
type HTTPSource struct {
	client *http.Client
}

func NewHTTPSource(timeout time.Duration) *HTTPSource {
	return &HTTPSource{client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: %w: %d", location, ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.Body, nil
}

func fetchJSON(ctx context.Context, src Source, location string, v any) error {
	body, err := src.Fetch(ctx, location)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return nil
}

// sigilName returns name if the set describes it and the undefined sigil
// otherwise, recording the undefined description in sigils.
func sigilName(name string, sigils map[string]string) string {
	if _, ok := sigils[name]; ok {
		return name
	}
	sigils[cards.UndefinedSigil] = cards.UndefinedSigilDescription
	return cards.UndefinedSigil
}
