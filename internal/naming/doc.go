// Package naming maps RAVDESS and ASVP-ESD sample filenames onto the unified
// ten-field filename schema and builds the Actor_<NN> output layout.
//
// Input names are hyphen-delimited numeric fields with a .wav suffix. Seven
// fields identify a RAVDESS file, nine or ten an ASVP-ESD file:
//
//	RAVDESS:  modality-vocal-emotion-intensity-statement-repetition-actor.wav
//	ASVP-ESD: modality-vocal-emotion-intensity-statement-repetition-actor-subcategory-language[-quality].wav
//	Unified:  modality-vocal-emotion-intensity-statement-repetition-actor-language-subcategory-quality.wav
//
// ASVP-ESD actors are renumbered above the RAVDESS range by [ActorState],
// which must be threaded through [Remap] in visitation order. The
// renumbering depends on that order, not only on the source actor id.
package naming
