// Package usecase はティッカー解決のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNotFound is returned when neither the local index nor the remote
	// search produced a ticker for the given company name.
	ErrNotFound = errors.New("no ticker found")

	// ErrUpstream is returned when the remote ticker search failed due to a
	// transport error, a non-success status or a malformed response.
	ErrUpstream = errors.New("ticker search upstream error")
)
