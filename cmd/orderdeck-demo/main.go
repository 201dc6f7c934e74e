// orderdeck-demo runs a throwaway in-memory orders service to point the
// client at during development.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"orderdeck/internal/demoapi"
)

func main() {
	var addr string
	var seed int
	flag.StringVar(&addr, "addr", ":8484", "Address to listen on")
	flag.IntVar(&seed, "seed", 250, "Number of random orders to seed")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	server := demoapi.NewServer(logger)
	server.Seed(seed)

	logger.Info().Str("addr", addr).Int("orders", seed).Msg("demo orders service listening")
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
