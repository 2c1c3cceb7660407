// Package usecase は株価サマリー取得のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNoData is returned when the end-of-day endpoint responded
	// successfully but carried zero data points for the symbol.
	ErrNoData = errors.New("no market data")

	// ErrUpstream is returned on transport failures and non-success
	// statuses from the end-of-day endpoint.
	ErrUpstream = errors.New("market data upstream error")

	// ErrMalformed is returned when a response is missing required fields,
	// carries non-numeric prices, or would make the percent change
	// undefined (zero previous open).
	ErrMalformed = errors.New("malformed market data")
)
