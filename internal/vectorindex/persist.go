package vectorindex

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	apperrors "project-intake-backend/internal/errors"
)

// Artifact file names inside the index directory
const (
	VectorsFile  = "project_vectors.index"
	MetadataFile = "project_metadata.json"
)

var vectorsMagic = [4]byte{'P', 'V', 'I', 'X'}

const vectorsVersion uint32 = 1

// maxVectorDim bounds the header dimension before anything is sized from it.
const maxVectorDim = 1 << 16

const vectorsHeaderSize = 16

type vectorsHeader struct {
	Magic   [4]byte
	Version uint32
	Dim     uint32
	Count   uint32
}

// writeArtifacts writes both files to temporaries and renames them into place.
// A crash between the two renames leaves a pair whose counts disagree, which
// readArtifacts rejects.
func writeArtifacts(dir string, snap *snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	vecTmp, err := writeTemp(dir, VectorsFile, func(w io.Writer) error {
		return encodeVectors(w, snap)
	})
	if err != nil {
		return fmt.Errorf("write vectors: %w", err)
	}
	metaTmp, err := writeTemp(dir, MetadataFile, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(snap.entries)
	})
	if err != nil {
		_ = os.Remove(vecTmp)
		return fmt.Errorf("write metadata: %w", err)
	}

	if err := os.Rename(vecTmp, filepath.Join(dir, VectorsFile)); err != nil {
		_ = os.Remove(vecTmp)
		_ = os.Remove(metaTmp)
		return fmt.Errorf("publish vectors: %w", err)
	}
	if err := os.Rename(metaTmp, filepath.Join(dir, MetadataFile)); err != nil {
		_ = os.Remove(metaTmp)
		return fmt.Errorf("publish metadata: %w", err)
	}
	return nil
}

func writeTemp(dir, name string, write func(io.Writer) error) (string, error) {
	f, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", err
	}
	path := f.Name()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func encodeVectors(w io.Writer, snap *snapshot) error {
	header := vectorsHeader{
		Magic:   vectorsMagic,
		Version: vectorsVersion,
		Dim:     uint32(snap.dim),
		Count:   uint32(len(snap.vectors)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	buf := make([]byte, 4*snap.dim)
	for _, v := range snap.vectors {
		for i, f := range v {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// readArtifacts returns nil, nil when neither artifact exists.
func readArtifacts(dir string, wantDim int) (*snapshot, error) {
	vecPath := filepath.Join(dir, VectorsFile)
	metaPath := filepath.Join(dir, MetadataFile)

	vecExists, err := exists(vecPath)
	if err != nil {
		return nil, err
	}
	metaExists, err := exists(metaPath)
	if err != nil {
		return nil, err
	}
	switch {
	case !vecExists && !metaExists:
		return nil, nil
	case vecExists != metaExists:
		return nil, apperrors.ErrIndexArtifactLost
	}

	dim, vectors, err := readVectors(vecPath)
	if err != nil {
		return nil, err
	}
	if dim != wantDim {
		return nil, fmt.Errorf("%w: stored dimension %d, embedder produces %d", apperrors.ErrIndexCorrupt, dim, wantDim)
	}

	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", apperrors.ErrIndexCorrupt, err)
	}
	if len(entries) != len(vectors) {
		return nil, fmt.Errorf("%w: %d vectors but %d metadata rows", apperrors.ErrIndexCorrupt, len(vectors), len(entries))
	}

	return &snapshot{dim: dim, vectors: vectors, entries: entries}, nil
}

func readVectors(path string) (int, [][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("open vectors: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return 0, nil, fmt.Errorf("stat vectors: %w", err)
	}
	r := bufio.NewReader(f)

	var header vectorsHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return 0, nil, fmt.Errorf("%w: header: %v", apperrors.ErrIndexCorrupt, err)
	}
	if header.Magic != vectorsMagic || header.Version != vectorsVersion {
		return 0, nil, fmt.Errorf("%w: unrecognized vectors file", apperrors.ErrIndexCorrupt)
	}

	if header.Dim == 0 || header.Dim > maxVectorDim {
		return 0, nil, fmt.Errorf("%w: dimension %d out of range", apperrors.ErrIndexCorrupt, header.Dim)
	}
	want := int64(vectorsHeaderSize) + int64(header.Count)*int64(header.Dim)*4
	if info.Size() != want {
		return 0, nil, fmt.Errorf("%w: file is %d bytes, header describes %d", apperrors.ErrIndexCorrupt, info.Size(), want)
	}

	dim := int(header.Dim)
	vectors := make([][]float32, header.Count)
	buf := make([]byte, 4*dim)
	for i := range vectors {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrIndexCorrupt, i, err)
		}
		v := make([]float32, dim)
		for j := range v {
			v[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf[j*4:]))
		}
		vectors[i] = v
	}
	return dim, vectors, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
