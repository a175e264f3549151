package main

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/talkifyhq/talkify-go/internal/utils"
	"github.com/talkifyhq/talkify-go/pkg/playback"
	"github.com/talkifyhq/talkify-go/pkg/talkify"
)

func dbg(err error) {
	if err != nil {
		log.Debug().Err(err).Msg("sth non-essential failed")
	}
}

func main() {
	voice := flag.String("voice", "", "voice name to synthesize with")
	format := flag.String("format", talkify.FormatMP3, "audio format, mp3 or wav")
	rate := flag.Int("rate", 0, "speaking rate adjustment")
	whisper := flag.Bool("whisper", false, "whisper instead of speaking")
	out := flag.String("out", "", "write the audio to this file")
	play := flag.Bool("play", false, "play the audio on the local speakers")
	flag.Parse()

	dbg(godotenv.Load())
	utils.SetupZerolog()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		log.Fatal().Msg("nothing to say, pass the text as arguments")
	}

	client, err := talkify.NewClient(talkify.Config{APIKey: os.Getenv("TALKIFY_API_KEY")})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create talkify client")
	}

	opts := talkify.SpeechOptions{Format: *format}
	if *voice != "" {
		opts.Voice = talkify.VoiceName(*voice)
	}
	if *rate != 0 {
		opts.Rate = talkify.Int(*rate)
	}
	if *whisper {
		opts.Whisper = talkify.Bool(true)
	}

	stream, err := client.Speech(context.Background(), text, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("synthesis failed")
	}
	defer stream.Close()

	if *out == "" && !*play {
		log.Fatal().Msg("pass -out and/or -play, otherwise the audio goes nowhere")
	}

	if *out != "" && !*play {
		// Stream straight to disk, no buffering needed.
		if err := afero.WriteReader(afero.NewOsFs(), *out, stream); err != nil {
			log.Fatal().Err(err).Str("path", *out).Msg("cannot write audio file")
		}
		log.Info().Str("path", *out).Msg("audio written")
		return
	}

	rawAudio, err := io.ReadAll(stream)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read audio stream")
	}
	log.Info().Int("byte_size", len(rawAudio)).Msg("audio received")

	if *out != "" {
		if err := afero.WriteFile(afero.NewOsFs(), *out, rawAudio, 0644); err != nil {
			log.Fatal().Err(err).Str("path", *out).Msg("cannot write audio file")
		}
		log.Info().Str("path", *out).Msg("audio written")
	}
	if err := playback.Play(rawAudio, *format); err != nil {
		log.Fatal().Err(err).Msg("playback failed")
	}
}
