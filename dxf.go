package adage

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadMeshFromDXFFile reads a simplified DXF file from disk. See
// NewMeshFromDXF for the format.
func LoadMeshFromDXFFile(fileName string, col color.RGBA) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open DXF file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := NewMeshFromDXF(file, col)
	if err != nil {
		return nil, fmt.Errorf("error parsing DXF file %s: %w", fileName, err)
	}
	return mesh, nil
}

// NewMeshFromDXF builds a Mesh from a simplified DXF stream: each 3DFACE
// entity is three header lines followed by four vertices, each vertex being
// an (index line, value line) pair per coordinate. Quads are split into two
// triangles; a face whose fourth corner repeats the third is kept as a
// single triangle.
func NewMeshFromDXF(reader io.Reader, col color.RGBA) (*Mesh, error) {
	mesh := NewMesh()
	scanner := bufio.NewScanner(reader)

	readFloatLine := func() (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse float value '%s': %w", scanner.Text(), err)
		}
		return val, nil
	}

	for scanner.Scan() {
		if !strings.HasPrefix(scanner.Text(), "3DFACE") {
			continue
		}

		for i := 0; i < 3; i++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("unexpected end of file while parsing 3DFACE header")
			}
		}

		var corners [4]Vector3
		for c := 0; c < 4; c++ {
			x, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading X coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan() // skip group code line

			y, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading Y coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan()

			z, err := readFloatLine()
			if err != nil {
				return nil, fmt.Errorf("error reading Z coordinate for vertex %d: %w", c, err)
			}
			scanner.Scan()

			corners[c] = Vector3{X: x, Y: y, Z: z}
		}

		i0 := mesh.AddVertex(corners[0])
		i1 := mesh.AddVertex(corners[1])
		i2 := mesh.AddVertex(corners[2])
		mesh.AddTriangle(NewTriangle(i0, i1, i2, col))
		if corners[3] != corners[2] {
			i3 := mesh.AddVertex(corners[3])
			mesh.AddTriangle(NewTriangle(i0, i2, i3, col))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from DXF source: %w", err)
	}
	return mesh, nil
}
