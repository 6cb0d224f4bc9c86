// Package fundtrade reconstructs the full position history of a single fund
// holding from a sparse table of user-entered status instructions.
//
// The core functionalities include:
//   - Instruction Decoding: turning the raw numeric status convention
//     (buy amount, redemption share count, redemption ratio, reinvestment
//     marker) into explicit, typed orders.
//   - Ledger Replay: a day-by-day engine that combines the decoded orders
//     with the fund's corporate-action calendar (dividends, share
//     conversions, lock-out days) and emits one cashflow entry plus one
//     lot-registry snapshot per actionable day.
//   - Lot Registry: the FIFO queue of still-outstanding purchase lots,
//     maintained as an immutable value so every historical snapshot stays
//     reachable and unaliased.
//   - Valuation: point-in-time reports, unit cost, maximum capital ever at
//     risk ("bottleneck"), annualized turnover and the realized internal
//     rate of return obtained by virtually liquidating the position.
//   - Data Persistence: encoding and decoding ledgers and status tables to
//     and from human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `ft` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fundtrade
