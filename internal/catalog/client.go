package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
)

// Client fetches card lists from a Scryfall-compatible catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxPages   int
}

// NewClient creates a catalog API client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxPages:   DefaultMaxPages,
	}
}

// listPage is one page of a paginated search response.
type listPage struct {
	Object     string        `json:"object"`
	TotalCards int           `json:"total_cards"`
	HasMore    bool          `json:"has_more"`
	NextPage   string        `json:"next_page"`
	Data       []cardPayload `json:"data"`
}

// cardPayload is the catalog's wire representation of one printing. The
// extra flag only appears in local catalog files; the API scopes extras
// through the search query instead.
type cardPayload struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Set             string `json:"set"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`
	Nonfoil         bool   `json:"nonfoil"`
	Foil            bool   `json:"foil"`
	Extra           bool   `json:"extra,omitempty"`
	Prices          struct {
		USD     *string `json:"usd"`
		USDFoil *string `json:"usd_foil"`
	} `json:"prices"`
	ImageURIs struct {
		Normal string `json:"normal"`
	} `json:"image_uris"`
}

func (p cardPayload) toDomain() domain.Card {
	return domain.Card{
		ID:              p.ID,
		Name:            p.Name,
		SetCode:         p.Set,
		CollectorNumber: p.CollectorNumber,
		Rarity:          domain.Rarity(p.Rarity),
		HasNonFoil:      p.Nonfoil,
		HasFoil:         p.Foil,
		PriceNonFoil:    parsePrice(p.Prices.USD),
		PriceFoil:       parsePrice(p.Prices.USDFoil),
		ImageURL:        p.ImageURIs.Normal,
	}
}

// parsePrice converts the API's nullable price string. An unparseable price
// is treated as absent rather than failing the whole page.
func parsePrice(s *string) *decimal.Decimal {
	if s == nil || *s == "" {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}

func (c *Client) searchURL(setCode string, variant domain.CatalogVariant) string {
	q := "e:" + setCode
	if variant == domain.VariantExtras {
		q += " include:extras"
	}
	params := url.Values{}
	params.Set("order", "set")
	params.Set("unique", "prints")
	params.Set("q", q)
	return c.baseURL + "/cards/search?" + params.Encode()
}

// SearchSet fetches every printing of one set, following cursor pagination
// until the catalog reports no more pages. Results accumulate locally and
// surface only once complete: a failure on any page returns a single catalog
// error with nothing partial exposed. The page cap bounds the loop against a
// catalog that never stops paginating.
func (c *Client) SearchSet(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, int, error) {
	log := logger.FromContext(ctx)

	var cards []domain.Card
	pages := 0
	pageURL := c.searchURL(setCode, variant)

	for pageURL != "" {
		if pages >= c.maxPages {
			log.Warn(LogMsgPageCapReached, "set", setCode, "pages", pages)
			break
		}

		page, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: set %q page %d: %v", domain.ErrCatalogUnavailable, setCode, pages+1, err)
		}
		pages++

		for _, payload := range page.Data {
			cards = append(cards, payload.toDomain())
		}

		log.Debug(LogMsgPageFetched, "set", setCode, "page", pages, "cards", len(page.Data), "has_more", page.HasMore)

		if !page.HasMore {
			break
		}
		pageURL = page.NextPage
	}

	return cards, pages, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (*listPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var page listPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}
	return &page, nil
}
