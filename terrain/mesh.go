package terrain

// BuildVertices returns interleaved x, y, z positions for every grid cell,
// row-major, as a tightly packed float32 buffer ready for upload. World
// coordinates come from the grid's own spacing so the rendered surface and
// the sampler's answers always agree.
func BuildVertices(grid *HeightGrid) []float32 {
	verts := make([]float32, 0, grid.Width*grid.Height*3)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			verts = append(verts,
				float32(float64(x)*grid.Spacing),
				float32(grid.At(x, y)),
				float32(float64(y)*grid.Spacing))
		}
	}
	return verts
}

// BuildStripIndices returns one triangle strip per adjacent row pair,
// flattened into a single index buffer, plus the element offset of each
// strip. Every strip zig-zags between row y and row y+1 and has the same
// length: 2*width.
func BuildStripIndices(width, height int) (indices []uint32, stripOffsets []int32) {
	indices = make([]uint32, 0, (height-1)*2*width)
	stripOffsets = make([]int32, 0, height-1)

	for y := 0; y < height-1; y++ {
		stripOffsets = append(stripOffsets, int32(len(indices)))
		for x := 0; x < width; x++ {
			indices = append(indices, uint32(y*width+x), uint32((y+1)*width+x))
		}
	}
	return indices, stripOffsets
}
