package universe

import (
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/httputil"
	"github.com/wonny/stockscope/pkg/logger"
)

// FromConfig builds the universe selected by PICKS_UNIVERSE.
// file and sp500 fall back to the built-in popular list.
// ⭐ SSOT: 유니버스 선택은 여기서만
func FromConfig(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) contracts.UniverseSource {
	switch cfg.Picks.Universe {
	case "file":
		return NewFallback(NewFile(cfg.Picks.UniverseFile), Popular(), log)
	case "sp500":
		return NewFallback(NewSP500(cfg.Picks.SP500URL, httpClient, log), Popular(), log)
	default:
		return Popular()
	}
}
