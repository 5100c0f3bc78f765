package catalog

import (
	"strings"
	"testing"
)

func TestEntriesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries() {
		if seen[e.ID] {
			t.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
	if len(seen) != 31 {
		t.Errorf("catalog has %d entries, want 31", len(seen))
	}
}

func TestEntriesPrompts(t *testing.T) {
	for _, e := range Entries() {
		if !strings.HasPrefix(e.Prompt, QualityPrefix+" ") {
			t.Errorf("%s: prompt does not start with the quality prefix", e.ID)
		}
		if len(e.Prompt) <= len(QualityPrefix)+1 {
			t.Errorf("%s: prompt has no scene text", e.ID)
		}
	}
}

func TestRenderOrder(t *testing.T) {
	e, ok := Lookup("after-scandinavian.jpg")
	if !ok {
		t.Fatal("after-scandinavian.jpg missing")
	}
	want := QualityPrefix + " A stunning Scandinavian-style bedroom. " +
		Styles["scandinavian"] + ". " + Rooms["Bedroom"] +
		". Cozy hygge atmosphere with soft morning light filtering through sheer white curtains. The space feels serene, warm, and perfectly balanced. Professional interior photography."
	if e.Prompt != want {
		t.Errorf("prompt = %q\nwant %q", e.Prompt, want)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	a := Entries()
	a[0].ID = "mutated"
	if Entries()[0].ID == "mutated" {
		t.Error("Entries exposes the backing slice")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		want    []string
		wantErr bool
	}{
		{name: "all", ids: nil, want: nil},
		{name: "catalog order", ids: []string{"style-rustic.jpg", "hero-showcase.jpg"}, want: []string{"hero-showcase.jpg", "style-rustic.jpg"}},
		{name: "unknown", ids: []string{"nope.jpg"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Select(%v) error = %v, wantErr %v", tt.ids, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.want == nil {
				if len(got) != len(Entries()) {
					t.Errorf("Select(nil) returned %d entries, want %d", len(got), len(Entries()))
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Select(%v) returned %d entries, want %d", tt.ids, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, e.ID, tt.want[i])
				}
			}
		})
	}
}
