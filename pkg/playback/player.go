// Package playback plays synthesized audio on the local speakers. It is a
// convenience for the CLIs; the talkify client itself never touches audio
// bytes.
package playback

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/talkifyhq/talkify-go/pkg/talkify"
)

// go-mp3 always decodes to 16-bit stereo regardless of the source channels.
const mp3ChannelCount = 2

// Play decodes rawAudio according to format (talkify.FormatMP3 or
// talkify.FormatWAV) and blocks until playback finishes.
func Play(rawAudio []byte, format string) error {
	switch format {
	case talkify.FormatMP3:
		return playMP3(rawAudio)
	case talkify.FormatWAV:
		return playWAV(rawAudio)
	default:
		return errors.Errorf("cannot play format %q", format)
	}
}

func playMP3(rawAudio []byte) error {
	decoded, err := mp3.NewDecoder(bytes.NewReader(rawAudio))
	if err != nil {
		return errors.Wrap(err, "cannot decode mp3")
	}
	log.Debug().Int("sample_rate", decoded.SampleRate()).Int64("byte_size", decoded.Length()).Msg("playing mp3")

	pcm := make([]byte, 0, decoded.Length())
	buf := make([]byte, 4096)
	for {
		n, readErr := decoded.Read(buf)
		pcm = append(pcm, buf[:n]...)
		if readErr != nil {
			break
		}
	}
	return playPCM(pcm, decoded.SampleRate(), mp3ChannelCount)
}

func playWAV(rawAudio []byte) error {
	decoder := wav.NewDecoder(bytes.NewReader(rawAudio))
	intBuffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return errors.Wrap(err, "cannot decode wav")
	}
	log.Debug().Int("sample_rate", intBuffer.Format.SampleRate).Int("num_samples", len(intBuffer.Data)).Msg("playing wav")

	return playPCM(intBufferToS16LE(intBuffer), intBuffer.Format.SampleRate, intBuffer.Format.NumChannels)
}

func playPCM(pcm []byte, sampleRate int, channelCount int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	// Only one oto context may exist per process.
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return errors.Wrap(err, "cannot initialize audio output")
	}
	<-readyChan

	player := otoCtx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(time.Millisecond)
	}
	return player.Close()
}

// intBufferToS16LE packs decoded samples into the two-byte little-endian
// layout oto expects.
func intBufferToS16LE(buf *audio.IntBuffer) []byte {
	out := make([]byte, 2*len(buf.Data))
	for i, sample := range buf.Data {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(sample)))
	}
	return out
}
