// Package pipeline walks a dataset tree, renames every .wav file into the
// unified schema, moves it under Actor_<NN>, and prunes empty directories.
//
// Processing is strictly sequential. Actor ids for ASVP-ESD files are
// assigned in discovery order (see naming.ActorState), so [Discover] sorts
// its result to make a run reproducible. Any error aborts the run and
// leaves the tree partially migrated.
package pipeline
