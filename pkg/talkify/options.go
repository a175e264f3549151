package talkify

// Audio formats accepted by the speech endpoint.
const (
	FormatMP3 = "mp3"
	FormatWAV = "wav"
)

// Option value bounds, per the service contract.
const (
	volumeMin    = -10
	volumeMax    = 10
	pitchMin     = -10
	pitchMax     = 10
	wordBreakMin = 0
	wordBreakMax = 1000
)

// SpeechOptions carries the tunable synthesis parameters. Pointer fields
// distinguish "not set" from a zero value so per-call overrides never erase a
// client default by accident.
type SpeechOptions struct {
	// Format is the output audio container, FormatMP3 or FormatWAV.
	Format string
	// FallbackLanguage is used when the voice cannot speak the input language.
	FallbackLanguage string
	// Voice selects the voice, either by bare name or a full Voice record.
	Voice VoiceSelector
	// Rate adjusts speaking speed.
	Rate *int
	// UseMarkup enables SSML-style markup interpretation of the input text.
	UseMarkup *bool
	// Whisper makes the voice whisper, where supported.
	Whisper *bool
	// Soft makes the voice speak softly, where supported.
	Soft *bool
	// Volume in [-10, 10].
	Volume *int
	// WordBreakMs is the pause between words in milliseconds, [0, 1000].
	WordBreakMs *int
	// Pitch in [-10, 10].
	Pitch *int
}

// Config configures a Client: the API key plus the default SpeechOptions
// applied to every call that does not override them.
type Config struct {
	APIKey string
	SpeechOptions
}

// validate checks only the fields that are actually set; defaulting of absent
// fields happens later, at merge time.
func validate(o SpeechOptions) error {
	if o.Format != "" && o.Format != FormatMP3 && o.Format != FormatWAV {
		return newValidationError("format %q is not supported, use %q or %q", o.Format, FormatMP3, FormatWAV)
	}
	if o.Volume != nil && (*o.Volume < volumeMin || *o.Volume > volumeMax) {
		return newValidationError("volume %d is outside [%d, %d]", *o.Volume, volumeMin, volumeMax)
	}
	if o.Pitch != nil && (*o.Pitch < pitchMin || *o.Pitch > pitchMax) {
		return newValidationError("pitch %d is outside [%d, %d]", *o.Pitch, pitchMin, pitchMax)
	}
	if o.WordBreakMs != nil && (*o.WordBreakMs < wordBreakMin || *o.WordBreakMs > wordBreakMax) {
		return newValidationError("word break %dms is outside [%d, %d]", *o.WordBreakMs, wordBreakMin, wordBreakMax)
	}
	return nil
}

// merge resolves each field independently as "override if set, else default".
// A bulk struct replacement would erase defaults the override never mentioned.
func merge(defaults, overrides SpeechOptions) SpeechOptions {
	resolved := defaults
	if overrides.Format != "" {
		resolved.Format = overrides.Format
	}
	if overrides.FallbackLanguage != "" {
		resolved.FallbackLanguage = overrides.FallbackLanguage
	}
	if overrides.Voice != nil {
		resolved.Voice = overrides.Voice
	}
	if overrides.Rate != nil {
		resolved.Rate = overrides.Rate
	}
	if overrides.UseMarkup != nil {
		resolved.UseMarkup = overrides.UseMarkup
	}
	if overrides.Whisper != nil {
		resolved.Whisper = overrides.Whisper
	}
	if overrides.Soft != nil {
		resolved.Soft = overrides.Soft
	}
	if overrides.Volume != nil {
		resolved.Volume = overrides.Volume
	}
	if overrides.WordBreakMs != nil {
		resolved.WordBreakMs = overrides.WordBreakMs
	}
	if overrides.Pitch != nil {
		resolved.Pitch = overrides.Pitch
	}
	return resolved
}

// Int returns a pointer to v, for the optional numeric options.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for the optional boolean options.
func Bool(v bool) *bool { return &v }
