package models

import "time"

// Candle is one OHLC bucket returned by the exchange.
//
// Sequences of candles are kept in the order the exchange returns them
// (ascending by OpenTime); the last element is the most recent bucket.
type Candle struct {
	OpenTime  time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	CloseTime time.Time
}
