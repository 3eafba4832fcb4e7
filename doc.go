// Package nexus provides the wealth aggregation engine behind the Nexus
// family-office dashboard and its report pipeline. It is designed to be
// deterministic and stateless: every figure is derived on demand from the
// in-memory asset records, so there is no cached state to invalidate.
//
// The core functionalities include:
//   - Currency Normalization: Converting locale-formatted money strings
//     ("4.500.000 €", "2.4M €") into canonical EUR amounts.
//   - Wealth Aggregation: Rolling per-asset-class figures into a single
//     Snapshot carrying total net worth, allocation, a blended return and
//     a liquidity ratio, together with derived series for charting.
//   - Static Records: The read-only asset-class collections (real estate,
//     holdings, private equity funds, crypto, passion assets, philanthropy
//     and treasury data) that every view and report is built from.
//
// This package serves as the foundational logic for the `nfo` command-line
// tool; the narrative, report and renderer packages all consume it.
package nexus
