package sampledata

import (
	"context"
	"fmt"
	"log"
)

func Run(ctx context.Context, repos Repos, seeders []Seeder, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, repos); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Printf("[Seeder] seeded name=%s", s.Name())
	}
	return nil
}
