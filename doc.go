// Package marketbot implements the return and valuation engine behind a
// small stock-watching chat bot.
//
// The engine is split in two:
//
//   - the Return Calculator computes multi-period percentage returns
//     (1D, 1W, 1M, YTD, 1Y) from a daily closing-price series,
//   - the Portfolio Valuator aggregates user-registered holdings into a
//     currency-converted total cost, value, profit and return.
//
// Price histories come from a Quoter (see the yahoo subpackage), exchange
// rates from a RateSource (see the fxrate subpackage), and holdings from a
// HoldingStore backed by a flat JSON file. All three are injected; the
// engine itself performs no I/O.
package marketbot
