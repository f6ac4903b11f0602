package wikitext

import "testing"

func TestWarningMessageText(t *testing.T) {
	if InvalidCharacter.Message() == "" {
		t.Error("InvalidCharacter.Message() is empty")
	}
	if UnexpectedHeadingLevelCorrecting.Message() == "" {
		t.Error("UnexpectedHeadingLevelCorrecting.Message() is empty")
	}
}

func TestWarningMessagesAreDistinct(t *testing.T) {
	seen := make(map[string]WarningMessage)
	for m := DefinitionTermContinuation; m <= UselessTextInRedirect; m++ {
		text := m.Message()
		if text == "" {
			t.Errorf("WarningMessage %d has an empty message", m)
			continue
		}
		if other, ok := seen[text]; ok {
			t.Errorf("WarningMessage %d and %d share message %q", m, other, text)
		}
		seen[text] = m
	}
}
