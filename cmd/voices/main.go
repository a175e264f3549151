package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/talkifyhq/talkify-go/internal/utils"
	"github.com/talkifyhq/talkify-go/pkg/talkify"
)

func dbg(err error) {
	if err != nil {
		log.Debug().Err(err).Msg("sth non-essential failed")
	}
}

func main() {
	language := flag.String("language", "", "only list voices for this language")
	detect := flag.String("detect", "", "detect the language of this text instead of listing voices")
	flag.Parse()

	dbg(godotenv.Load())
	utils.SetupZerolog()

	client, err := talkify.NewClient(talkify.Config{APIKey: os.Getenv("TALKIFY_API_KEY")})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create talkify client")
	}

	if *detect != "" {
		detected, err := client.DetectLanguage(context.Background(), *detect)
		if err != nil {
			log.Fatal().Err(err).Msg("language detection failed")
		}
		if detected == nil {
			fmt.Println("no language confidently detected")
			return
		}
		fmt.Printf("%s (%s)\n", detected.Name, strings.Join(detected.Cultures, ", "))
		return
	}

	voices, err := client.AvailableVoices(context.Background(), *language)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot fetch voices")
	}
	for _, voice := range voices {
		tags := make([]string, 0, 2)
		if voice.IsNeural {
			tags = append(tags, "neural")
		}
		if voice.IsPremium {
			tags = append(tags, "premium")
		}
		fmt.Printf("%-20s %-10s %-12s %-8s formats=%s %s\n",
			voice.Name, voice.Culture, voice.Language, voice.Gender,
			strings.Join(voice.SupportedFormats, ","), strings.Join(tags, ","))
	}
}
