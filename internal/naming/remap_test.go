package naming

import (
	"errors"
	"strings"
	"testing"
)

func TestRemap(t *testing.T) {
	cases := []struct {
		name      string
		basename  string
		want      string
		wantDir   string
		wantState ActorState
	}{
		{
			name:      "ravdess speech",
			basename:  "03-01-05-01-02-01-24.wav",
			want:      "03-01-05-01-1002-01-24-02-00-00.wav",
			wantDir:   "Actor_24",
			wantState: NewActorState(),
		},
		{
			name:      "ravdess song maps to non-speech",
			basename:  "03-02-06-02-01-02-07.wav",
			want:      "03-03-06-02-1001-01-07-02-00-00.wav",
			wantDir:   "Actor_07",
			wantState: NewActorState(),
		},
		{
			name:      "asvp nine fields",
			basename:  "03-01-09-01-01-01-01-13-02.wav",
			want:      "03-01-03-01-1001-01-25-02-01-00.wav",
			wantDir:   "Actor_25",
			wantState: ActorState{LastMale: 24, LastFemale: 25},
		},
		{
			name:      "asvp ten fields keeps quality code",
			basename:  "03-02-05-02-04-01-02-15-01-66.wav",
			want:      "03-03-05-02-1004-01-25-01-10-66.wav",
			wantDir:   "Actor_25",
			wantState: ActorState{LastMale: 25, LastFemale: 24},
		},
		{
			name:      "asvp ten fields other quality code is clean",
			basename:  "03-01-11-01-03-01-01-00-03-12.wav",
			want:      "03-01-04-01-1003-01-25-03-00-00.wav",
			wantDir:   "Actor_25",
			wantState: ActorState{LastMale: 24, LastFemale: 25},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, state, err := Remap(tc.basename, NewActorState())
			if err != nil {
				t.Fatalf("Remap(%q): %v", tc.basename, err)
			}
			if got.Filename() != tc.want {
				t.Errorf("filename: got %q, want %q", got.Filename(), tc.want)
			}
			if got.ActorDir() != tc.wantDir {
				t.Errorf("dir: got %q, want %q", got.ActorDir(), tc.wantDir)
			}
			if state != tc.wantState {
				t.Errorf("state: got %+v, want %+v", state, tc.wantState)
			}
		})
	}
}

func TestRemap_RavdessKeepsEmotion(t *testing.T) {
	for code := range EmotionCodes {
		name := "03-01-" + code + "-01-01-01-01.wav"
		got, _, err := Remap(name, NewActorState())
		if err != nil {
			t.Fatalf("Remap(%q): %v", name, err)
		}
		if got.Emotion != code {
			t.Errorf("%s: emotion got %q, want %q", name, got.Emotion, code)
		}
		if got.Language != "02" || got.Subcategory != "00" || got.Quality != "00" || got.Repetition != "01" {
			t.Errorf("%s: defaults got lang=%s sub=%s quality=%s rep=%s",
				name, got.Language, got.Subcategory, got.Quality, got.Repetition)
		}
	}
}

func TestRemap_ExcitedBecomesHappy(t *testing.T) {
	for _, name := range []string{
		"03-01-09-01-01-01-01-00-02.wav",
		"03-02-09-02-05-01-08-13-01-77.wav",
	} {
		got, _, err := Remap(name, NewActorState())
		if err != nil {
			t.Fatalf("Remap(%q): %v", name, err)
		}
		if got.Emotion != "03" {
			t.Errorf("%s: emotion got %q, want 03", name, got.Emotion)
		}
	}
}

// A RAVDESS name whose statement was already offset gets offset again.
func TestRemap_StatementOffsetReapplied(t *testing.T) {
	first, _, err := Remap("03-01-05-01-02-01-24.wav", NewActorState())
	if err != nil {
		t.Fatal(err)
	}
	if first.Statement != 1002 {
		t.Fatalf("first pass statement: got %d, want 1002", first.Statement)
	}

	again, _, err := Remap("03-01-05-01-1002-01-24.wav", NewActorState())
	if err != nil {
		t.Fatal(err)
	}
	if again.Statement != 2002 {
		t.Errorf("second pass statement: got %d, want 2002", again.Statement)
	}
}

func TestRemap_Errors(t *testing.T) {
	cases := []struct {
		name     string
		basename string
		want     error
	}{
		{"six fields", "03-01-05-01-02-24.wav", ErrMalformedName},
		{"eight fields", "03-01-05-01-02-01-24-00.wav", ErrMalformedName},
		{"eleven fields", "03-01-05-01-02-01-24-00-02-00-01.wav", ErrMalformedName},
		{"no wav suffix", "03-01-05-01-02-01-24.mp3", ErrMalformedName},
		{"non-numeric statement", "03-01-05-01-xx-01-24.wav", ErrMalformedName},
		{"non-numeric actor", "03-01-05-01-02-01-ab.wav", ErrMalformedName},
		{"unknown vocal channel", "03-04-05-01-02-01-24.wav", ErrUnknownVocalChannel},
		{"unknown emotion", "03-01-14-01-01-01-01-00-02.wav", ErrUnknownEmotion},
		{"unknown subcategory", "03-01-03-01-01-01-01-99-02.wav", ErrUnknownSubcategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := ActorState{LastMale: 30, LastFemale: 31}
			_, state, err := Remap(tc.basename, start)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Remap(%q) error = %v, want %v", tc.basename, err, tc.want)
			}
			if state != start {
				t.Errorf("state changed on error: got %+v, want %+v", state, start)
			}
		})
	}
}

func TestActorState_Assign(t *testing.T) {
	cases := []struct {
		name      string
		start     ActorState
		source    int
		wantID    int
		wantState ActorState
	}{
		{"female follows seed", NewActorState(), 1, 25, ActorState{LastMale: 24, LastFemale: 25}},
		{"male collapses onto seed+1", NewActorState(), 2, 25, ActorState{LastMale: 25, LastFemale: 24}},
		{"male follows last", ActorState{LastMale: 25, LastFemale: 24}, 2, 26, ActorState{LastMale: 26, LastFemale: 24}},
		{"female gap collapses", ActorState{LastMale: 24, LastFemale: 25}, 3, 26, ActorState{LastMale: 24, LastFemale: 26}},
		{"repeat actor advances", ActorState{LastMale: 24, LastFemale: 25}, 1, 26, ActorState{LastMale: 24, LastFemale: 26}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, state := tc.start.Assign(tc.source)
			if id != tc.wantID {
				t.Errorf("id: got %d, want %d", id, tc.wantID)
			}
			if state != tc.wantState {
				t.Errorf("state: got %+v, want %+v", state, tc.wantState)
			}
		})
	}
}

// assignAll runs source actor ids through one traversal and returns the ids
// in visitation order.
func assignAll(sources []int) []int {
	state := NewActorState()
	ids := make([]int, 0, len(sources))
	for _, src := range sources {
		var id int
		id, state = state.Assign(src)
		ids = append(ids, id)
	}
	return ids
}

func TestActorState_DependsOnVisitationOrder(t *testing.T) {
	forward := assignAll([]int{1, 2, 3})
	wantForward := []int{25, 25, 26}
	if !intsEqual(forward, wantForward) {
		t.Fatalf("order 1,2,3: got %v, want %v", forward, wantForward)
	}

	reverse := assignAll([]int{3, 2, 1})
	wantReverse := []int{25, 25, 26}
	if !intsEqual(reverse, wantReverse) {
		t.Fatalf("order 3,2,1: got %v, want %v", reverse, wantReverse)
	}

	// Same ids in visitation order, but source actors 1 and 3 swap targets.
	byActorForward := map[int]int{1: forward[0], 3: forward[2]}
	byActorReverse := map[int]int{3: reverse[0], 1: reverse[2]}
	if byActorForward[1] == byActorReverse[1] || byActorForward[3] == byActorReverse[3] {
		t.Errorf("expected order-dependent ids: forward %v, reverse %v", byActorForward, byActorReverse)
	}
}

func TestActorState_FirstMaleSharesFirstFemaleID(t *testing.T) {
	// Candidate 26 does not follow the male seed 24, so it collapses to 25.
	state := NewActorState()
	female, state := state.Assign(1)
	male, _ := state.Assign(2)
	if female != 25 || male != 25 {
		t.Errorf("got female %d, male %d; want both 25", female, male)
	}
}

func TestRemap_OutputHasTenFields(t *testing.T) {
	inputs := []string{
		"03-01-05-01-02-01-24.wav",
		"03-02-01-01-01-02-01.wav",
		"03-01-09-01-01-01-01-13-02.wav",
		"03-02-05-02-04-01-02-15-01-66.wav",
		"03-01-13-02-66-01-40-27-04-77.wav",
	}
	state := NewActorState()
	for _, in := range inputs {
		var u UnifiedName
		var err error
		u, state, err = Remap(in, state)
		if err != nil {
			t.Fatalf("Remap(%q): %v", in, err)
		}
		stem := strings.TrimSuffix(u.Filename(), AudioExt)
		if n := len(strings.Split(stem, "-")); n != 10 {
			t.Errorf("%s -> %s: %d fields, want 10", in, u.Filename(), n)
		}
	}
}

func TestParseRecord_Schema(t *testing.T) {
	cases := []struct {
		basename string
		want     Schema
	}{
		{"03-01-05-01-02-01-24.wav", SchemaUnified},
		{"03-01-09-01-01-01-01-13-02.wav", SchemaSecondary},
		{"03-02-05-02-04-01-02-15-01-66.wav", SchemaSecondary},
		{"/data/Actor_01/03-01-05-01-02-01-01.wav", SchemaUnified},
	}
	for _, tc := range cases {
		t.Run(tc.basename, func(t *testing.T) {
			r, err := ParseRecord(tc.basename)
			if err != nil {
				t.Fatal(err)
			}
			if r.Schema != tc.want {
				t.Errorf("schema: got %v, want %v", r.Schema, tc.want)
			}
		})
	}
}

func TestGetOutputPath(t *testing.T) {
	u := UnifiedName{
		Modality: "03", VocalChannel: "01", Emotion: "05", Intensity: "01",
		Statement: 1002, Repetition: "01", Actor: "7", ActorID: 7,
		Language: "02", Subcategory: "00", Quality: "00",
	}
	got := GetOutputPath(u, "/data")
	want := "/data/Actor_07/03-01-05-01-1002-01-7-02-00-00.wav"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDestinationTracker(t *testing.T) {
	dt := NewDestinationTracker()

	if _, collided := dt.Claim("/in/a.wav", "/out/x.wav"); collided {
		t.Error("first claim reported a collision")
	}
	if _, collided := dt.Claim("/in/a.wav", "/out/x.wav"); collided {
		t.Error("re-claim by the same input reported a collision")
	}
	prev, collided := dt.Claim("/in/b.wav", "/out/x.wav")
	if !collided || prev != "/in/a.wav" {
		t.Errorf("second input: got (%q, %v), want (%q, true)", prev, collided, "/in/a.wav")
	}
	if dt.Len() != 1 {
		t.Errorf("Len: got %d, want 1", dt.Len())
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
