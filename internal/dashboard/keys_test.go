package dashboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestBrowseKeys_ContainsExpected(t *testing.T) {
	// Given: the browse key map
	km := BrowseKeyMap()
	allKeys := collectKeys(km.ShortHelp())

	// Then: all expected navigation and action keys are present
	expected := []string{"up", "k", "down", "j", "tab", "b", "d", "q", "ctrl+c"}
	for _, want := range expected {
		if !containsKey(allKeys, want) {
			t.Errorf("BrowseKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestConfirmKeys_ContainsExpected(t *testing.T) {
	km := ConfirmKeyMap()
	allKeys := collectKeys(km.ShortHelp())

	for _, want := range []string{"enter", "y", "esc", "n"} {
		if !containsKey(allKeys, want) {
			t.Errorf("ConfirmKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestKeyMaps_FullHelpCoversShortHelp(t *testing.T) {
	km := BrowseKeyMap()
	var full []key.Binding
	for _, group := range km.FullHelp() {
		full = append(full, group...)
	}
	if len(full) != len(km.ShortHelp()) {
		t.Errorf("FullHelp has %d bindings, ShortHelp has %d", len(full), len(km.ShortHelp()))
	}
}

func TestHelpBindings(t *testing.T) {
	t.Run("confirm mode has no quit key", func(t *testing.T) {
		allKeys := collectKeys(HelpBindings(ModeConfirm, ViewDetail).ShortHelp())
		if containsKey(allKeys, "q") {
			t.Error("confirm help should not contain 'q'")
		}
		if !containsKey(allKeys, "enter") {
			t.Error("confirm help should contain 'enter'")
		}
	})

	t.Run("birthdays view offers to go back to the contact", func(t *testing.T) {
		km, ok := HelpBindings(ModeBrowse, ViewBirthdays).(browseKeys)
		if !ok {
			t.Fatal("browse mode should return browseKeys")
		}
		if got := km.Birthdays.Help().Desc; got != "contact" {
			t.Errorf("Birthdays desc = %q, want %q", got, "contact")
		}
	})

	t.Run("detail view offers birthdays", func(t *testing.T) {
		km := HelpBindings(ModeBrowse, ViewDetail).(browseKeys)
		if got := km.Birthdays.Help().Desc; got != "birthdays" {
			t.Errorf("Birthdays desc = %q, want %q", got, "birthdays")
		}
	})
}

func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
