package client

import "github.com/Yippine/QuizForge-AI/internal/config"

// InitClients builds the sources in configured order.
func InitClients(cfg []config.SourceConfig) []Source {
	sources := make([]Source, 0, len(cfg))
	for _, s := range cfg {
		sources = append(sources, NewSource(s.Name, s.Location))
	}
	return sources
}
