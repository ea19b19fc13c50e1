package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snaken/internal/remote"
)

func main() {
	configPath := flag.String("config", "./config.json", "path to the JSON server config, created with defaults when missing")
	port := flag.String("port", "", "listen port, overrides the config file")
	flag.Parse()

	cfg, err := remote.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		err := cfg.Watch(ctx, func(c remote.ServerConfig) {
			log.Printf("episode defaults now %dx%d, max %d episodes", c.Episode.Width, c.Episode.Height, c.MaxEpisodes)
		})
		if err != nil {
			log.Printf("config watch stopped: %v", err)
		}
	}()

	listen := cfg.Current().Port
	if *port != "" {
		listen = *port
	}
	server := remote.NewServer(cfg)
	log.Printf("snaken server listening on :%s", listen)

	errc := make(chan error, 1)
	go func() { errc <- server.Run(":" + listen) }()
	select {
	case err := <-errc:
		log.Fatalf("server: %v", err)
	case <-ctx.Done():
		log.Printf("shutting down")
	}
}
