package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/plexus/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var frameHeader = []string{"frame", "lines", "mean_push", "mean_speed", "pointer"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Particles   int                `json:"particles"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	PointerPath string             `json:"pointer_path"`
	Frames      int                `json:"frames"`
	Elapsed     time.Duration      `json:"elapsed"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Summarize fills the frame count and the summary metrics from a result.
// Metrics already set by the caller are kept.
func (m *RunMetadata) Summarize(result *sim.Result) {
	m.Frames = len(result.Frames)
	m.Elapsed = result.Elapsed
	if m.Metrics == nil {
		m.Metrics = map[string]float64{}
	}
	if m.Frames == 0 {
		return
	}
	var lines, push, peak float64
	for _, f := range result.Frames {
		lines += float64(f.Lines)
		push += f.MeanPush
		peak = max(peak, float64(f.Lines))
	}
	n := float64(m.Frames)
	m.Metrics["mean_lines"] = lines / n
	m.Metrics["peak_lines"] = peak
	m.Metrics["mean_push"] = push / n
	m.Metrics["final_speed"] = result.Frames[m.Frames-1].MeanSpeed
}

// Save writes the run under a new directory and returns its id. ID and
// Timestamp are assigned here.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	name := meta.Preset
	if name == "" {
		name = "custom"
	}
	now := time.Now()
	meta.Timestamp = now
	meta.Summarize(result)

	id, runDir, err := s.newRunDir(fmt.Sprintf("%s_%d", name, now.UnixNano()))
	if err != nil {
		return "", err
	}
	meta.ID = id

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(frameHeader); err != nil {
		return "", err
	}
	for _, f := range result.Frames {
		row := []string{
			strconv.Itoa(f.Frame),
			strconv.Itoa(f.Lines),
			strconv.FormatFloat(f.MeanPush, 'f', 6, 64),
			strconv.FormatFloat(f.MeanSpeed, 'f', 6, 64),
			strconv.FormatBool(f.Pointer),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// newRunDir creates a fresh directory for base, adding a numeric suffix
// when the name is already taken.
func (s *Store) newRunDir(base string) (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadFrames reads the per-frame series back. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([]sim.FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.FrameStats{}, nil
	}

	frames := make([]sim.FrameStats, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(frameHeader) {
			continue
		}
		frame, err1 := strconv.Atoi(record[0])
		lines, err2 := strconv.Atoi(record[1])
		push, err3 := strconv.ParseFloat(record[2], 64)
		speed, err4 := strconv.ParseFloat(record[3], 64)
		pointer, err5 := strconv.ParseBool(record[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		frames = append(frames, sim.FrameStats{
			Frame:     frame,
			Lines:     lines,
			MeanPush:  push,
			MeanSpeed: speed,
			Pointer:   pointer,
		})
	}

	return frames, nil
}
