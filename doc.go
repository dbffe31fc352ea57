// Package taxlot computes realized gains and the resulting tax for a history of
// crypto-asset transactions. It is designed to be a pure, deterministic
// transformation: a full transaction history goes in, a tax report comes out,
// and nothing survives between two calls.
//
// The core functionalities include:
//   - Lot Inventory: every acquisition (buy, deposit, staking reward) opens a
//     lot holding its quantity, unit cost and acquisition time.
//   - Cost Basis Methods: disposals consume open lots in FIFO, LIFO or HIFO
//     order, chosen once per report.
//   - Disposal Matching: each sale records which lots it consumed, the cost
//     basis attributed to it and the realized gain, using exact decimal
//     arithmetic.
//   - Aggregation: spot and derivative results are accumulated in separate
//     ledgers and a flat tax rate is applied to the taxable base.
//   - Snapshots: an append-only journal of lot events answers "what did the
//     inventory look like on that day", even after later sales.
//
// This package serves as the foundational logic for the `ctax` command-line
// tool. Reading and writing transactions in JSONL is provided by
// DecodeTransactions and EncodeTransactions.
package taxlot
