// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cave

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always draws the same value, clamped to the requested range.
type constSource int

func (c constSource) IntN(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

func (c constSource) Uint64N(n uint64) uint64 {
	return min(uint64(c), n-1)
}

func params(count, width, height, connectivity int, radius float64) Params {
	p := DefaultParams()
	p.Count = count
	p.Width = width
	p.Height = height
	p.Connectivity = connectivity
	p.Radius = radius
	return p
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Params)
		wantField string
	}{
		{name: "defaults", mutate: func(*Params) {}},
		{name: "zero count", mutate: func(p *Params) { p.Count = 0 }, wantField: "count"},
		{name: "negative width", mutate: func(p *Params) { p.Width = -1 }, wantField: "width"},
		{name: "zero height", mutate: func(p *Params) { p.Height = 0 }, wantField: "height"},
		{name: "connectivity over 100", mutate: func(p *Params) { p.Connectivity = 101 }, wantField: "connectivity"},
		{name: "negative connectivity", mutate: func(p *Params) { p.Connectivity = -5 }, wantField: "connectivity"},
		{name: "connectivity bounds", mutate: func(p *Params) { p.Connectivity = 100 }},
		{name: "negative radius", mutate: func(p *Params) { p.Radius = -0.5 }, wantField: "radius"},
		{name: "nan radius", mutate: func(p *Params) { p.Radius = math.NaN() }, wantField: "radius"},
		{name: "zero radius", mutate: func(p *Params) { p.Radius = 0 }},
		{name: "zero attempts", mutate: func(p *Params) { p.MaxAttempts = 0 }, wantField: "max-attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "want ConfigurationError, got %v", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestGenerate_Properties(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{name: "defaults", p: DefaultParams()},
		{name: "small box", p: params(20, 10, 10, 50, 5)},
		{name: "wide", p: params(50, 1000, 3, 80, 40)},
		{name: "dense", p: params(60, 10, 8, 100, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Generate(NewSource(42), tt.p)
			require.NoError(t, err)
			require.Len(t, c.Caverns, tt.p.Count)
			require.Equal(t, tt.p.Count, c.Matrix.Size())

			seen := map[Cavern]bool{}
			for _, cv := range c.Caverns {
				assert.False(t, seen[cv], "duplicate cavern %v", cv)
				seen[cv] = true
				assert.True(t, tt.p.Bounds().Contains(cv), "cavern %v out of bounds", cv)
			}

			assert.True(t, tt.p.EntryRegion().Contains(c.Caverns[0]))
			assert.True(t, tt.p.ExitRegion().Contains(c.Caverns[tt.p.Count-1]))

			for n := range c.Caverns {
				assert.Equal(t, uint8(0), c.Matrix.At(n, n), "diagonal at %d", n)
				for i := range c.Caverns {
					if c.Caverns[n].DistanceTo(c.Caverns[i]) > tt.p.Radius {
						assert.Equal(t, uint8(0), c.Matrix.At(n, i), "out of range pair (%d,%d)", n, i)
					}
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := DefaultParams()

	a, err := Generate(NewSource(7), p)
	require.NoError(t, err)
	b, err := Generate(NewSource(7), p)
	require.NoError(t, err)
	c, err := Generate(NewSource(8), p)
	require.NoError(t, err)

	assert.Equal(t, a.Caverns, b.Caverns)
	assert.Equal(t, a.Matrix.Cells(), b.Matrix.Cells())
	assert.NotEqual(t, a.Caverns, c.Caverns)
}

func TestGenerate_FullyConnectedPair(t *testing.T) {
	p := params(2, 10, 10, 100, 100)

	c, err := Generate(NewSource(1), p)
	require.NoError(t, err)

	assert.True(t, Region{0, 3, 0, 3}.Contains(c.Caverns[0]))
	assert.True(t, Region{6, 10, 6, 10}.Contains(c.Caverns[1]))
	assert.Equal(t, []uint8{0, 1, 1, 0}, c.Matrix.Cells())
}

func TestGenerate_ZeroRadius(t *testing.T) {
	p := params(3, 400, 200, 100, 0)

	for seed := int64(1); seed <= 20; seed++ {
		c, err := Generate(NewSource(seed), p)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Matrix.Edges(), "seed %d", seed)
	}
}

func TestGenerate_ZeroConnectivityStillDraws(t *testing.T) {
	// A draw of 0 is <= 0, so pairs in range connect about 1% of the time.
	p := params(60, 10, 10, 0, 100)

	c, err := Generate(NewSource(3), p)
	require.NoError(t, err)
	assert.Less(t, c.Matrix.Edges(), 60*59/10)
}

func TestGenerate_SingleCavernUsesExitRegion(t *testing.T) {
	p := params(1, 10, 10, 50, 30)

	for seed := int64(1); seed <= 20; seed++ {
		c, err := Generate(NewSource(seed), p)
		require.NoError(t, err)
		require.Len(t, c.Caverns, 1)
		assert.True(t, p.ExitRegion().Contains(c.Caverns[0]), "seed %d: %v", seed, c.Caverns[0])
		assert.Equal(t, []uint8{0}, c.Matrix.Cells())
	}
}

func TestRegionFor(t *testing.T) {
	p := params(5, 400, 200, 50, 30)

	assert.Equal(t, Region{0, 133, 0, 66}, RegionFor(0, p))
	assert.Equal(t, Region{0, 400, 0, 200}, RegionFor(2, p))
	assert.Equal(t, Region{266, 400, 133, 200}, RegionFor(4, p))
}

func TestPlace_RegionFull(t *testing.T) {
	// A 2x2 point plane holds at most 4 caverns.
	p := params(10, 1, 1, 50, 30)

	_, err := Place(NewSource(5), p)

	var placeErr *PlacementError
	require.True(t, errors.As(err, &placeErr), "want PlacementError, got %v", err)
	assert.Equal(t, 4, placeErr.Index)
	assert.Equal(t, 0, placeErr.Attempts)
	assert.Contains(t, err.Error(), "no free point")
}

func TestPlace_AttemptsExhausted(t *testing.T) {
	p := params(3, 10, 10, 50, 30)
	p.MaxAttempts = 25

	// Every draw lands on (0,0), so cavern 1 can never be placed.
	_, err := Place(constSource(0), p)

	var placeErr *PlacementError
	require.True(t, errors.As(err, &placeErr), "want PlacementError, got %v", err)
	assert.Equal(t, 1, placeErr.Index)
	assert.Equal(t, 25, placeErr.Attempts)
	assert.Equal(t, p.Bounds(), placeErr.Region)
}

func TestPlace_InvalidParams(t *testing.T) {
	_, err := Place(NewSource(1), params(0, 10, 10, 50, 30))

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestConnect_Asymmetric(t *testing.T) {
	// With a coin-flip connectivity some in-range pair disagrees with its
	// mirror for at least one of these seeds.
	p := params(40, 20, 20, 50, 30)

	asymmetric := false
	for seed := int64(1); seed <= 10 && !asymmetric; seed++ {
		c, err := Generate(NewSource(seed), p)
		require.NoError(t, err)
		asymmetric = !c.Matrix.Symmetric()
	}
	assert.True(t, asymmetric)
}

func TestIntRange(t *testing.T) {
	src := NewSource(11)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := IntRange(src, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "both endpoints are reachable")

	assert.Equal(t, 5, IntRange(src, 5, 5))
}

func TestRandomSeed(t *testing.T) {
	assert.NotZero(t, RandomSeed())
}

func TestRegion_Size(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		want uint64
	}{
		{name: "point", r: Region{0, 0, 0, 0}, want: 1},
		{name: "default plane", r: Region{0, 400, 0, 200}, want: 401 * 201},
		{name: "wide strip", r: Region{0, math.MaxInt, 0, 0}, want: 1 << 63},
		{name: "saturated", r: Region{0, math.MaxInt, 0, 1<<32 - 1}, want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Size())
		})
	}
}

func TestExitRegion_LargePlane(t *testing.T) {
	p := params(3, math.MaxInt, math.MaxInt, 50, 30)

	r := p.ExitRegion()
	assert.Equal(t, math.MaxInt/3*2, r.MinX)
	assert.Equal(t, math.MaxInt, r.MaxX)
	assert.Positive(t, r.MinY)

	for _, w := range []int{0, 1, 2, 3, 4, 5, 400, 401, 402} {
		assert.Equal(t, 2*w/3, twoThirds(w), "width %d", w)
	}
}

func TestIntRange_Wide(t *testing.T) {
	src := NewSource(3)
	for i := 0; i < 100; i++ {
		v := IntRange(src, 0, math.MaxInt)
		assert.GreaterOrEqual(t, v, 0)
	}
	assert.Equal(t, math.MaxInt-1, IntRange(constSource(math.MaxInt-1), 0, math.MaxInt))
}

func TestGenerate_LargePlane(t *testing.T) {
	for _, width := range []int{math.MaxInt, math.MaxInt - 1, 1 << 32} {
		p := params(3, width, 1<<32-1, 50, 30)
		p.MaxAttempts = 10

		c, err := Generate(NewSource(1), p)
		require.NoError(t, err, "width %d", width)
		require.Len(t, c.Caverns, 3)
		for _, cv := range c.Caverns {
			assert.True(t, p.Bounds().Contains(cv), "cavern %v out of bounds", cv)
		}
		assert.True(t, p.EntryRegion().Contains(c.Caverns[0]))
		assert.True(t, p.ExitRegion().Contains(c.Caverns[2]))
	}
}
