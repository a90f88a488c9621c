package main

import (
	"flag"
	"fmt"
	"os"

	"hanabi/internal/hanabi"
)

func main() {
	showPath := flag.String("show", "", "YAML show file (audio, cues, window, volume)")
	audioPath := flag.String("audio", "", "audio file (.mp3, .wav, .flac); overrides the show file")
	cuePath := flag.String("cues", "", "JSON cue file; overrides the show file")
	flag.Parse()

	show := hanabi.DefaultShow()
	if *showPath != "" {
		var err error
		show, err = hanabi.LoadShow(*showPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hanabi: %v\n", err)
			os.Exit(1)
		}
	}
	if *audioPath != "" {
		show.Audio = *audioPath
	}
	if *cuePath != "" {
		show.Cues = *cuePath
	}

	if show.Audio == "" || show.Cues == "" {
		fmt.Fprintln(os.Stderr, "hanabi: an audio file and a cue file are required (-show or -audio/-cues)")
		flag.Usage()
		os.Exit(1)
	}

	if err := hanabi.RunDesktop(show); err != nil {
		fmt.Fprintf(os.Stderr, "hanabi: %v\n", err)
		os.Exit(1)
	}
}
