package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/renzk/shadingwheel/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50 // normal + 3 vertices as float32 triples + attribute count
)

// ErrEmptyFile is returned for zero-length input
var ErrEmptyFile = errors.New("stl: empty file")

// ParseFile opens and parses an STL file
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads an STL stream, detecting ASCII or binary encoding.
// Binary files whose header happens to begin with "solid" are recognised
// by a facet-count check before falling back to ASCII.
func Parse(r io.ReadSeeker) (*Model, error) {
	header := make([]byte, binaryHeaderSize+4)
	n, err := io.ReadFull(r, header)
	if n == 0 {
		if err == io.EOF {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine file size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if bytes.HasPrefix(header[:n], []byte("solid")) && !looksBinary(header[:n], size) {
		return parseASCII(r)
	}
	return parseBinary(r)
}

func looksBinary(header []byte, size int64) bool {
	if len(header) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(header[binaryHeaderSize:])
	return int64(binaryHeaderSize+4)+int64(count)*binaryFacetSize == size
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal geometry.Vector3
	vertices := make([]geometry.Vector3, 0, 3)
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")

		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				continue
			}
			v, err := parseVector(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", line, err)
			}
			normal = v

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs three coordinates", line)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
			normal = geometry.Vector3{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

// binaryFacet mirrors the on-disk little-endian record
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func parseBinary(reader io.Reader) (*Model, error) {
	br := bufio.NewReader(reader)

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model := NewModel(strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))))

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model.Triangles = make([]geometry.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		var f binaryFacet
		if err := binary.Read(br, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(toVector(f.Normal), toVector(f.V1), toVector(f.V2), toVector(f.V3)))
	}

	return model, nil
}
