package marketstack

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"stockbot_backend/internal/feature/quote/domain/entity"
	quoteusecase "stockbot_backend/internal/feature/quote/usecase"
	resolverusecase "stockbot_backend/internal/feature/resolver/usecase"
	"stockbot_backend/internal/platform/externalapi/marketstack/dto"
	"stockbot_backend/internal/shared/ratelimiter"
)

// Client はmarketstack APIからティッカー検索と日次株価を取得するクライアントです。
// resolver側のSearchRepositoryとquote側のMarketRepositoryの両方を実装します。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// コンパイル時のインターフェース実装チェック
var (
	_ resolverusecase.SearchRepository = (*Client)(nil)
	_ quoteusecase.MarketRepository    = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterはAPIの呼び出し頻度上限を守るための共有スロットルです。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// SearchTickers は会社名でティッカー候補を検索し、シンボル文字列のスライスを
// 返します。候補ゼロは正常系（空スライス）であり、判断は呼び出し元が行います。
func (c *Client) SearchTickers(ctx context.Context, query string) ([]string, error) {
	var body dto.TickerSearchResponse
	q := url.Values{}
	q.Set("search", query)

	if err := c.get(ctx, "/v1/tickers", q, &body); err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(body.Data))
	for _, d := range body.Data {
		// シンボルを持たない候補はスキップ
		if d.Symbol == "" {
			continue
		}
		symbols = append(symbols, d.Symbol)
	}
	return symbols, nil
}

// GetEndOfDay は指定シンボルの直近の日次レコードを取得します。
// データゼロ件はErrNoData、通信異常はErrUpstream、必須フィールドの欠落や
// 数値として解釈できない価格はErrMalformedとして返します。
func (c *Client) GetEndOfDay(ctx context.Context, symbol string) (entity.EndOfDay, error) {
	var body dto.EODResponse
	q := url.Values{}
	q.Set("symbols", symbol)

	if err := c.get(ctx, "/v1/eod", q, &body); err != nil {
		return entity.EndOfDay{}, fmt.Errorf("%w: %v", quoteusecase.ErrUpstream, err)
	}

	if len(body.Data) == 0 {
		return entity.EndOfDay{}, fmt.Errorf("%w for %s", quoteusecase.ErrNoData, symbol)
	}

	// 最新のレコードは先頭要素
	latest := body.Data[0]

	closePrice, err := strconv.ParseFloat(latest.Close, 64)
	if err != nil {
		return entity.EndOfDay{}, fmt.Errorf("%w: parse close %q", quoteusecase.ErrMalformed, latest.Close)
	}
	openPrice, err := strconv.ParseFloat(latest.Open, 64)
	if err != nil {
		return entity.EndOfDay{}, fmt.Errorf("%w: parse open %q", quoteusecase.ErrMalformed, latest.Open)
	}

	return entity.EndOfDay{
		Symbol: symbol,
		Close:  closePrice,
		Open:   openPrice,
	}, nil
}

// get はクエリパラメータにアクセスキーを付与してGETし、JSONをoutへデコードします。
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	q.Set("access_key", c.cfg.AccessKey)
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("marketstack http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
