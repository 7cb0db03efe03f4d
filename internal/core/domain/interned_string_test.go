package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/automap/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	s1 := "FullName"
	s2 := "FullName"

	is1 := domain.NewInternedString(s1)
	is2 := domain.NewInternedString(s2)

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != s1 {
		t.Errorf("Expected String() to return %q, got %q", s1, is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var is domain.InternedString

	if !is.IsZero() {
		t.Error("Expected zero InternedString to report IsZero")
	}
	if is.String() != "" {
		t.Errorf("Expected empty string, got %q", is.String())
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected interned empty string not to be zero")
	}
}

func TestInternedStringJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal in struct", func(t *testing.T) {
		type member struct {
			Name domain.InternedString `json:"name"`
		}

		original := member{Name: domain.NewInternedString("Age")}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal struct: %v", err)
		}

		expectedJSON := `{"name":"Age"}`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled member
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("Failed to unmarshal struct: %v", err)
		}

		if unmarshaled.Name.String() != original.Name.String() {
			t.Errorf("Expected unmarshaled name %q, got %q", original.Name.String(), unmarshaled.Name.String())
		}
	})
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("Convert slice of strings to InternedStrings", func(t *testing.T) {
		names := []string{"ID", "Name", "Email"}

		interned := domain.NewInternedStrings(names)

		if len(interned) != len(names) {
			t.Fatalf("Expected %d interned strings, got %d", len(names), len(interned))
		}
		for i, expected := range names {
			if interned[i].String() != expected {
				t.Errorf("Expected interned string at index %d to be %q, got %q", i, expected, interned[i].String())
			}
		}
	})

	t.Run("Empty slice returns empty slice", func(t *testing.T) {
		if got := domain.NewInternedStrings([]string{}); len(got) != 0 {
			t.Errorf("Expected empty slice, got %d elements", len(got))
		}
	})

	t.Run("Duplicate strings share a handle", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{"Name", "Name"})

		if interned[0].Value() != interned[1].Value() {
			t.Errorf("Expected handles to be equal for identical strings")
		}
	})
}
