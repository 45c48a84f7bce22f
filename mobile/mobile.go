package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"onitama/internal/onitama"
	"onitama/internal/server/game"
	httpserver "onitama/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// ruleset: "classic" or "standard"
// port: port to listen on, e.g. "2888"
func StartServer(ruleset string, port string) error {
	h, err := newHandler(ruleset)
	if err != nil {
		return err
	}

	// Run in background so it doesn't block the UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, h); err != nil {
			log.Error().Err(err).Str("port", port).Msg("server error")
		}
	}()
	return nil
}

func newHandler(ruleset string) (http.Handler, error) {
	catalog, err := onitama.CatalogByName(ruleset)
	if err != nil {
		return nil, err
	}
	rules := onitama.Rules{Catalog: catalog, FirstToMove: onitama.Blue}
	mgr := game.NewManager(rules, game.WithLogger(log.Logger))
	return httpserver.NewServer(mgr, log.Logger), nil
}
