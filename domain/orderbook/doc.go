// Package orderbook implements the in-memory matching core for a
// single instrument. It keeps two ordered sides of FIFO price levels,
// matches crossing orders with strict price-time priority, and tracks
// every resting order in an id index for O(1) cancellation lookup.
//
// Prices are exact decimal-scaled values; no floating point reaches
// the matching boundary. The book is single-writer: the service layer
// owns it and serializes every mutating call.
package orderbook
