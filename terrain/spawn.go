package terrain

import "math"

const (
	// spawnInset keeps the flatness test away from the edge cells, where
	// the sampler's clamping would make neighbor differences meaningless.
	spawnInset = 5
	// spawnClearance lifts the capsule bottom just off the surface so the
	// first physics tick settles it instead of starting embedded.
	spawnClearance = 0.1
	// fallbackSpawnY is well above the highest possible elevation; if no
	// flat cell exists the capsule simply falls onto the terrain.
	fallbackSpawnY = 50.0
)

// FindSpawn scans the grid row-major, starting spawnInset cells in from
// every edge, for the first cell whose elevation differs from its right and
// down neighbors by less than flatnessThreshold. The returned world
// position puts the capsule bottom at the surface plus clearance. The scan
// is deterministic: the same grid always yields the same spawn.
func FindSpawn(grid *HeightGrid, capsuleHeight, capsuleRadius, flatnessThreshold float64) (x, y, z float64) {
	for gy := spawnInset; gy < grid.Height-spawnInset; gy++ {
		for gx := spawnInset; gx < grid.Width-spawnInset; gx++ {
			center := grid.At(gx, gy)
			dx := math.Abs(center - grid.At(gx+1, gy))
			dz := math.Abs(center - grid.At(gx, gy+1))

			if dx < flatnessThreshold && dz < flatnessThreshold {
				return float64(gx) * grid.Spacing,
					center + capsuleHeight/2 + capsuleRadius + spawnClearance,
					float64(gy) * grid.Spacing
			}
		}
	}

	return 0, fallbackSpawnY, 0
}
