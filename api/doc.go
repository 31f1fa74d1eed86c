// Package api exposes the casino tables over HTTP and a websocket feed.
//
// # Routes
//
//	POST /v1/evaluate        evaluate a 7-card pool
//	GET  /v1/categories      list hand categories
//	POST /v1/showdown        settle a hand and append it to the history
//	GET  /v1/history         the hand history chain
//	GET  /v1/history/verify  check the chain, 409 when it was tampered with
//	GET  /v1/history/{index} one block, 404 past the tip
//	GET  /ws                 showdown feed
//	GET  /metrics, /healthz
//
// Errors are JSON objects {"error": "..."}. Malformed bodies and unparsable
// cards are 400; pools or tables that parse but cannot be played are 422.
//
// # Feed
//
// Every connection first receives a "hello" message carrying its client id,
// then one "showdown" message per settled hand with the history record as
// payload. Slow clients are dropped.
package api
