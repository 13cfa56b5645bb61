package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

const (
	brandSummaryPath = "/kg/get_brand_summary"
	allBrandsPath    = "/kg/get_all_brands"
	brandQueryPath   = "/kg/query_brand_data"

	// bytes of a non-200 body kept for the log line
	maxErrBody = 512
)

// Data types and sentiments understood by the brand query endpoint.
const (
	DataTypeReviews   = "reviews"
	DataTypeReddit    = "reddit_threads"
	DataTypeSocial    = "social_comments"
	SentimentNegative = "negative"
)

// KnowledgeClient reads brand data from the remote knowledge graph service.
// Every method soft-fails: a non-200 status, a transport error or an
// undecodable body produce an empty result marked model.FetchFailed.
// Nothing is cached and nothing is retried.
type KnowledgeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewKnowledgeClient builds a client for baseURL. A nil httpClient uses a
// plain http.Client without timeout; the caller's context bounds each call.
func NewKnowledgeClient(baseURL string, httpClient *http.Client) *KnowledgeClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &KnowledgeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type brandSummaryResponse struct {
	Summary struct {
		NegativeReviews []string `json:"negative_reviews"`
		NegativeReddit  []string `json:"negative_reddit"`
		NegativeSocial  []string `json:"negative_social"`
	} `json:"summary"`
}

type allBrandsResponse struct {
	Brands []string `json:"brands"`
}

type brandQueryResponse struct {
	Results []string `json:"results"`
}

// BrandNegativeData fetches the negative-sentiment aggregate for brand.
func (c *KnowledgeClient) BrandNegativeData(ctx context.Context, brand string) model.NegativeData {
	var body brandSummaryResponse
	if err := c.getJSON(ctx, brandSummaryPath, url.Values{"brand_name": {brand}}, &body); err != nil {
		logx.Warn().Err(err).Str("brand", brand).Msg("brand summary unavailable, treating as no data")
		return model.NegativeData{
			Reviews: []string{},
			Reddit:  []string{},
			Social:  []string{},
			Status:  model.FetchFailed,
		}
	}

	data := model.NegativeData{
		Reviews: orEmpty(body.Summary.NegativeReviews),
		Reddit:  orEmpty(body.Summary.NegativeReddit),
		Social:  orEmpty(body.Summary.NegativeSocial),
		Status:  model.FetchOK,
	}
	logx.Debug().
		Str("brand", brand).
		Int("negative_reviews", len(data.Reviews)).
		Int("negative_reddit", len(data.Reddit)).
		Int("negative_social", len(data.Social)).
		Msg("brand negative data fetched")
	return data
}

// Brands fetches the brand catalog.
func (c *KnowledgeClient) Brands(ctx context.Context) model.BrandCatalog {
	var body allBrandsResponse
	if err := c.getJSON(ctx, allBrandsPath, nil, &body); err != nil {
		logx.Warn().Err(err).Msg("brand catalog unavailable, treating as empty")
		return model.BrandCatalog{Brands: []string{}, Status: model.FetchFailed}
	}
	logx.Debug().Strs("brands", body.Brands).Msg("brand catalog fetched")
	return model.BrandCatalog{Brands: orEmpty(body.Brands), Status: model.FetchOK}
}

// QueryBrandData runs a filtered query. Empty dataType or sentiment are left
// out of the request.
func (c *KnowledgeClient) QueryBrandData(ctx context.Context, brand, dataType, sentiment string) model.QueryResult {
	params := url.Values{"brand_name": {brand}}
	if dataType != "" {
		params.Set("data_type", dataType)
	}
	if sentiment != "" {
		params.Set("sentiment", sentiment)
	}

	var body brandQueryResponse
	if err := c.getJSON(ctx, brandQueryPath, params, &body); err != nil {
		logx.Warn().Err(err).
			Str("brand", brand).
			Str("data_type", dataType).
			Str("sentiment", sentiment).
			Msg("brand query failed, treating as no results")
		return model.QueryResult{Results: []string{}, Status: model.FetchFailed}
	}
	logx.Debug().Str("brand", brand).Str("data_type", dataType).Int("results", len(body.Results)).Msg("brand query done")
	return model.QueryResult{Results: orEmpty(body.Results), Status: model.FetchOK}
}

// NegativeReviews returns negative reviews for brand.
func (c *KnowledgeClient) NegativeReviews(ctx context.Context, brand string) model.QueryResult {
	return c.QueryBrandData(ctx, brand, DataTypeReviews, SentimentNegative)
}

// NegativeReddit returns negative Reddit threads for brand.
func (c *KnowledgeClient) NegativeReddit(ctx context.Context, brand string) model.QueryResult {
	return c.QueryBrandData(ctx, brand, DataTypeReddit, SentimentNegative)
}

// NegativeSocial returns negative social media comments for brand.
func (c *KnowledgeClient) NegativeSocial(ctx context.Context, brand string) model.QueryResult {
	return c.QueryBrandData(ctx, brand, DataTypeSocial, SentimentNegative)
}

func (c *KnowledgeClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ model.KnowledgeSource = (*KnowledgeClient)(nil)
