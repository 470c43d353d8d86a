package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sanity-io/litter"

	"github.com/Kaura007/Ai-news-later-Agent-2/config"
	"github.com/Kaura007/Ai-news-later-Agent-2/generator"
	"github.com/Kaura007/Ai-news-later-Agent-2/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	serve := flag.Bool("serve", false, "start the web UI")
	addr := flag.String("addr", "", "http listen address when --serve (overrides ADDR)")
	topic := flag.String("topic", "", "generate one newsletter for this topic and print it")
	mock := flag.Bool("mock", false, "run without API keys using the built-in mock backends")
	flag.BoolVar(&verbose, "v", false, "dump the full generation result")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil && !*mock {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pipe, err := buildPipeline(cfg, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(pipe, server.Options{
			Credentialed: *mock || cfg.CredentialsConfigured(),
			SessionTTL:   cfg.SessionTTL,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer srv.Close()

		listen := cfg.Addr
		if *addr != "" {
			listen = *addr
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot mode
	if *topic == "" {
		fmt.Fprintln(os.Stderr, "--topic is required unless --serve is set")
		os.Exit(1)
	}

	log.Printf("[cli] generating newsletter topic=%q", *topic)
	res := pipe.Generate(context.Background(), *topic, generator.DefaultCustomization())
	if verbose {
		litter.Dump(res)
	}
	if res.Status != generator.StatusSuccess {
		fmt.Fprintln(os.Stderr, res.Content)
		os.Exit(1)
	}
	fmt.Println(res.Content)
}

func buildPipeline(cfg *config.Config, mock bool) (*generator.Pipeline, error) {
	if mock {
		return generator.NewPipeline(&generator.MockLLM{}, &generator.MockSearcher{})
	}
	llm, err := generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Model:   cfg.GroqModel,
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
	})
	if err != nil {
		return nil, err
	}
	return generator.NewPipeline(llm, generator.NewSerperClient(cfg.SerperAPIKey))
}
