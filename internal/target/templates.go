package target

import _ "embed"

// prologuePlaceholder is the opaque prologue stub spliced ahead of the
// emitter's own output. It is the same text for every profile, and there
// is no option to supply an externally-produced prologue instead.
// The prologue stage itself (target description includes, ProcResource
// declarations) is out of scope for this module (spec.md §1) — this
// embed only stands in for it so cmd/schedgen always produces a
// complete, self-describing file on its own.
//
//go:embed templates/prologue.txt
var prologuePlaceholder string

// Prologue returns the placeholder prologue text for this profile.
func (p *Profile) Prologue() string { return prologuePlaceholder }
