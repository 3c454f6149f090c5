// Package domain contains the core entities of the regsnap pipeline:
// normalised documents, per-agency statistics, snapshots and the
// historical series, plus the RawItem probing capability used during
// normalisation. Domain types have no dependencies on adapters.
package domain
