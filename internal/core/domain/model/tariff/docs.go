// Package tariff provides the externally configurable pricing inputs:
// the shipping fee schedule and the jurisdiction tax table.
//
// Both types are immutable snapshots. The pricing engine receives them
// per call, so pricing stays deterministic even while an administrator
// updates the stored configuration concurrently.
package tariff
