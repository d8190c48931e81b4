package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarPreferences_ScanNullAndEmpty(t *testing.T) {
	var prefs CarPreferences
	assert.NoError(t, prefs.Scan(nil))
	assert.True(t, prefs.Empty())

	assert.NoError(t, prefs.Scan([]byte("null")))
	assert.True(t, prefs.Empty())

	assert.NoError(t, prefs.Scan([]byte(`{}`)))
	assert.True(t, prefs.Empty())
}

func TestCarPreferences_ScanPopulated(t *testing.T) {
	var prefs CarPreferences
	assert.NoError(t, prefs.Scan(`{"make":"Toyota","budget":"30k"}`))
	assert.Equal(t, "Toyota", *prefs.Make)
	assert.Nil(t, prefs.Model)
	assert.Equal(t, "30k", *prefs.Budget)
}

func TestCarPreferences_ScanIncompatibleType(t *testing.T) {
	var prefs CarPreferences
	assert.Error(t, prefs.Scan(42))
}

func TestTranscript_ValueOfNilIsEmptyArray(t *testing.T) {
	var transcript Transcript
	value, err := transcript.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}

func TestTranscript_RoundTrip(t *testing.T) {
	original := Transcript{
		{Role: MessageRoleUser, Content: "my budget is 20k"},
		{Role: MessageRoleAssistant, Content: "Got it. Could you share your name and your email or phone?"},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned Transcript
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
	assert.Equal(t, MessageRoleUser, scanned[0].Role)
}
