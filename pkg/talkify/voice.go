package talkify

import "strings"

// VoiceSelector identifies a voice for synthesis. It is satisfied by
// VoiceName (a bare identifier) and by Voice (a record returned from
// AvailableVoices), so either can be passed back in as a selector.
type VoiceSelector interface {
	voiceName() string
}

// VoiceName selects a voice by its plain name.
type VoiceName string

func (v VoiceName) voiceName() string { return string(v) }

// Voice describes a voice offered by the service.
type Voice struct {
	Culture          string
	Name             string
	Gender           string
	Language         string
	Description      string
	SupportedFormats []string

	IsStandard  bool
	IsPremium   bool
	IsExclusive bool
	IsNeural    bool

	SupportsSpeechMarks bool
	SupportsWhisper     bool
	SupportsWordBreak   bool
	SupportsSoftSpeech  bool
	SupportsVolume      bool
	SupportsPitch       bool
}

func (v Voice) voiceName() string { return v.Name }

// Language is the result of a successful language detection.
type Language struct {
	Name     string
	Cultures []string
}

// wireVoice mirrors the service's voice record field names.
type wireVoice struct {
	Culture           string   `json:"Culture"`
	Name              string   `json:"Name"`
	Gender            string   `json:"Gender"`
	Language          string   `json:"Language"`
	Description       string   `json:"Description"`
	SupportedFormats  []string `json:"SupportedFormats"`
	IsStandard        bool     `json:"IsStandard"`
	IsPremium         bool     `json:"IsPremium"`
	IsExclusive       bool     `json:"IsExclusive"`
	IsNeural          bool     `json:"IsNeural"`
	CanUseSpeechMarks bool     `json:"CanUseSpeechMarks"`
	CanWhisper        bool     `json:"CanWhisper"`
	CanUseWordBreak   bool     `json:"CanUseWordBreak"`
	CanSpeakSoftly    bool     `json:"CanSpeakSoftly"`
	CanControlVolume  bool     `json:"CanControlVolume"`
	CanUsePitch       bool     `json:"CanUsePitch"`
}

func (w wireVoice) normalize() Voice {
	formats := make([]string, len(w.SupportedFormats))
	for i, f := range w.SupportedFormats {
		formats[i] = strings.ToLower(f)
	}
	return Voice{
		Culture:             w.Culture,
		Name:                w.Name,
		Gender:              w.Gender,
		Language:            w.Language,
		Description:         w.Description,
		SupportedFormats:    formats,
		IsStandard:          w.IsStandard,
		IsPremium:           w.IsPremium,
		IsExclusive:         w.IsExclusive,
		IsNeural:            w.IsNeural,
		SupportsSpeechMarks: w.CanUseSpeechMarks,
		SupportsWhisper:     w.CanWhisper,
		SupportsWordBreak:   w.CanUseWordBreak,
		SupportsSoftSpeech:  w.CanSpeakSoftly,
		SupportsVolume:      w.CanControlVolume,
		SupportsPitch:       w.CanUsePitch,
	}
}
