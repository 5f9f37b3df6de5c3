package aco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ringroute/aco"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, aco.DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*aco.Config)
		want   error
	}{
		{"zero ants", func(c *aco.Config) { c.Ants = 0 }, aco.ErrBadAntCount},
		{"negative ants", func(c *aco.Config) { c.Ants = -3 }, aco.ErrBadAntCount},
		{"zero iterations", func(c *aco.Config) { c.Iterations = 0 }, aco.ErrBadIterationCount},
		{"negative alpha", func(c *aco.Config) { c.Alpha = -0.1 }, aco.ErrBadAlpha},
		{"negative beta", func(c *aco.Config) { c.Beta = -1 }, aco.ErrBadBeta},
		{"rho zero", func(c *aco.Config) { c.Evaporation = 0 }, aco.ErrBadEvaporation},
		{"rho one", func(c *aco.Config) { c.Evaporation = 1 }, aco.ErrBadEvaporation},
		{"rho above one", func(c *aco.Config) { c.Evaporation = 1.5 }, aco.ErrBadEvaporation},
		{"zero Q", func(c *aco.Config) { c.Q = 0 }, aco.ErrBadDeposit},
		{"zero tau0", func(c *aco.Config) { c.PheromoneInit = 0 }, aco.ErrBadPheromoneInit},
		{"negative start", func(c *aco.Config) { c.StartVertex = -1 }, aco.ErrStartOutOfRange},
		{"negative workers", func(c *aco.Config) { c.Workers = -2 }, aco.ErrBadWorkerCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := aco.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)

			// NewColony must surface the same sentinel and no Colony.
			colony, err := aco.NewColony(cfg)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, colony)
		})
	}
}

func TestConfig_WorkersZeroMeansAuto(t *testing.T) {
	cfg := aco.DefaultConfig()
	cfg.Workers = 0
	assert.NoError(t, cfg.Validate())
}
