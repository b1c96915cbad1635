package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxUnifiedActorID is the highest RAVDESS actor id. ASVP-ESD actors are
// renumbered above it.
const MaxUnifiedActorID = 24

// StatementOffset moves statement codes into a range no source dataset uses.
const StatementOffset = 1000

// ActorState carries the last actor id handed out on each parity track.
// Even ids are the male track, odd ids the female track.
type ActorState struct {
	LastMale   int
	LastFemale int
}

// NewActorState returns the state at the start of a traversal.
func NewActorState() ActorState {
	return ActorState{LastMale: MaxUnifiedActorID, LastFemale: MaxUnifiedActorID}
}

// Assign renumbers an ASVP-ESD actor id and returns the updated state.
//
// The candidate is sourceActor+MaxUnifiedActorID. Its parity selects the
// track. Unless the candidate directly follows the track's last id, it is
// collapsed to last+1. The result therefore depends on the order in which
// files are visited, not only on sourceActor.
func (s ActorState) Assign(sourceActor int) (int, ActorState) {
	candidate := sourceActor + MaxUnifiedActorID
	if candidate%2 == 0 {
		if candidate-1 != s.LastMale {
			candidate = s.LastMale + 1
		}
		s.LastMale = candidate
	} else {
		if candidate-1 != s.LastFemale {
			candidate = s.LastFemale + 1
		}
		s.LastFemale = candidate
	}
	return candidate, s
}

// UnifiedName is a remapped filename in the ten-field unified schema.
type UnifiedName struct {
	Modality     string
	VocalChannel string
	Emotion      string
	Intensity    string
	Statement    int
	Repetition   string
	Actor        string // As written into the filename.
	ActorID      int
	Language     string
	Subcategory  string
	Quality      string

	Source Schema
}

// Filename renders the unified wire name, .wav suffix included.
func (u UnifiedName) Filename() string {
	return strings.Join([]string{
		u.Modality,
		u.VocalChannel,
		u.Emotion,
		u.Intensity,
		strconv.Itoa(u.Statement),
		u.Repetition,
		u.Actor,
		u.Language,
		u.Subcategory,
		u.Quality,
	}, "-") + AudioExt
}

// ActorDir is the directory name the file belongs in, e.g. "Actor_07".
func (u UnifiedName) ActorDir() string {
	return fmt.Sprintf("Actor_%02d", u.ActorID)
}

// Remap converts one RAVDESS or ASVP-ESD filename to the unified schema.
// state is only advanced for ASVP-ESD inputs; RAVDESS inputs return it
// unchanged.
//
// RAVDESS statements get StatementOffset added unconditionally, so a name
// whose statement was already offset is offset again.
func Remap(basename string, state ActorState) (UnifiedName, ActorState, error) {
	rec, err := ParseRecord(basename)
	if err != nil {
		return UnifiedName{}, state, err
	}

	vocal, ok := VocalChannelCodes[rec.field(fieldVocalChannel)]
	if !ok {
		return UnifiedName{}, state, fmt.Errorf("%w %q in %s", ErrUnknownVocalChannel, rec.field(fieldVocalChannel), rec.Name)
	}
	statement, err := atoiField(rec, fieldStatement, "statement")
	if err != nil {
		return UnifiedName{}, state, err
	}
	actor, err := atoiField(rec, fieldActor, "actor")
	if err != nil {
		return UnifiedName{}, state, err
	}

	u := UnifiedName{
		Modality:     rec.field(fieldModality),
		VocalChannel: vocal,
		Intensity:    rec.field(fieldIntensity),
		Statement:    statement + StatementOffset,
		Repetition:   DefaultRepetition,
		Source:       rec.Schema,
	}

	if rec.Schema == SchemaUnified {
		u.Emotion = rec.field(fieldEmotion)
		u.Actor = rec.field(fieldActor)
		u.ActorID = actor
		u.Language = DefaultLanguage
		u.Subcategory = DefaultSubcategory
		u.Quality = QualityClean
		return u, state, nil
	}

	emotion, ok := EmotionCodes[rec.field(fieldEmotion)]
	if !ok {
		return UnifiedName{}, state, fmt.Errorf("%w %q in %s", ErrUnknownEmotion, rec.field(fieldEmotion), rec.Name)
	}
	sub, ok := SubcategoryCodes[rec.field(fieldSubcategory)]
	if !ok {
		return UnifiedName{}, state, fmt.Errorf("%w %q in %s", ErrUnknownSubcategory, rec.field(fieldSubcategory), rec.Name)
	}

	// Lookups are done before Assign so a failed file never advances state.
	id, next := state.Assign(actor)

	u.Emotion = emotion
	u.Actor = strconv.Itoa(id)
	u.ActorID = id
	u.Language = rec.field(fieldLanguage)
	u.Subcategory = sub
	u.Quality = QualityClean
	if q := rec.field(fieldQuality); QualityCodes[q] {
		u.Quality = q
	}
	return u, next, nil
}

func atoiField(rec Record, i int, label string) (int, error) {
	n, err := strconv.Atoi(rec.field(i))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s %q is not a number", ErrMalformedName, rec.Name, label, rec.field(i))
	}
	return n, nil
}
