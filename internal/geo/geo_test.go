package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	mumbai := Coord{Lat: 19.0760, Lng: 72.8777}
	pune := Coord{Lat: 18.5204, Lng: 73.8567}

	t.Run("identical points are zero", func(t *testing.T) {
		assert.Zero(t, Distance(mumbai, mumbai))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Distance(mumbai, pune), Distance(pune, mumbai))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := Distance(Coord{Lat: 0, Lng: 0}, Coord{Lat: 1, Lng: 0})
		assert.Equal(t, 111.2, d)
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		d := Distance(mumbai, pune)
		assert.Equal(t, math.Round(d*10)/10, d)
		assert.InDelta(t, 120, d, 5)
	})
}

func TestFitBounds(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		assert.Equal(t, Bounds{}, FitBounds())
	})

	t.Run("single point collapses", func(t *testing.T) {
		p := Coord{Lat: 19.0760, Lng: 72.8777}
		b := FitBounds(p)
		assert.Equal(t, p, b.SouthWest)
		assert.Equal(t, p, b.NorthEast)
	})

	t.Run("covers every point", func(t *testing.T) {
		b := FitBounds(
			Coord{Lat: 19.1, Lng: 72.8},
			Coord{Lat: 18.9, Lng: 73.1},
			Coord{Lat: 19.3, Lng: 72.9},
		)
		assert.Equal(t, Coord{Lat: 18.9, Lng: 72.8}, b.SouthWest)
		assert.Equal(t, Coord{Lat: 19.3, Lng: 73.1}, b.NorthEast)
	})
}
