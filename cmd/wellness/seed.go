package main

import (
	"context"
	"errors"
	"time"

	"wellness/internal/app"
	"wellness/internal/sample"
)

// SeedCmd replaces all entries with synthetic history.
type SeedCmd struct {
	Days int    `help:"Days of history per user." default:"30"`
	Seed uint64 `help:"Random seed; 0 picks one from the clock."`
}

// Validate is called by kong after parsing.
func (c *SeedCmd) Validate() error {
	if c.Days < 1 {
		return errors.New("--days must be at least 1")
	}
	return nil
}

func (c *SeedCmd) Run(g *Globals) error {
	if err := c.Validate(); err != nil {
		return err
	}

	st, err := openStores(g)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen := sample.New(seed)
	gen.Days = c.Days

	n, err := app.NewSeedService(st.creds, st.entries, gen).Regenerate(context.Background())
	if err != nil {
		return err
	}
	g.logger.Info("sample data regenerated", "rows", n, "days", gen.Days, "store", g.Store)
	return nil
}
