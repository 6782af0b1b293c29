// Package survey persists a tank calibration survey on disk: the
// normalized curve, any validation output, and the display configuration
// the renderers use. The computation packages stay I/O-free; everything
// that touches the filesystem lives here or in cmd.
package survey

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fusionatg/tankcal-cli/internal/chart"
	"github.com/fusionatg/tankcal-cli/internal/utils"
	"github.com/fusionatg/tankcal-cli/internal/validation"
	"github.com/google/uuid"
)

const surveyFileName = "survey.json"

// Display is the presentation bag consumed by table renderers. It never
// influences computation, only formatting.
type Display struct {
	Precision   int    `json:"precision"`
	HeightLabel string `json:"height_label"`
	VolumeLabel string `json:"volume_label"`
}

// DefaultDisplay returns the display settings used when a survey has none.
func DefaultDisplay() Display {
	return Display{Precision: 2, HeightLabel: "Dip (mm)", VolumeLabel: "Volume (L)"}
}

// Survey is a calibration survey persisted as survey.json.
type Survey struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Tank        string                       `json:"tank"`
	Description string                       `json:"description"`
	Curve       chart.Curve                  `json:"curve,omitempty"`
	Records     []validation.ProcessedRecord `json:"records,omitempty"`
	Deliveries  []validation.DeliveryRecord  `json:"deliveries,omitempty"`
	Stats       *validation.Stats            `json:"stats,omitempty"`
	Display     Display                      `json:"display"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`

	// Not serialized: on-disk location of survey.json.
	rootDir string `json:"-"`
}

// New constructs an in-memory survey. Call Save() to persist.
func New(name, tank, description, rootDir string) *Survey {
	return &Survey{
		ID:          uuid.NewString(),
		Name:        name,
		Tank:        tank,
		Description: description,
		Display:     DefaultDisplay(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		rootDir:     rootDir,
	}
}

// Load reads a survey.json from the provided directory.
func Load(dir string) (*Survey, error) {
	path := filepath.Join(dir, surveyFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("survey not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read survey: %w", err)
	}
	var s Survey
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse survey: %w", err)
	}
	s.rootDir = dir
	return &s, nil
}

// RootDir returns the on-disk survey directory path.
func (s *Survey) RootDir() string { return s.rootDir }

// Save writes survey.json using an atomic write.
func (s *Survey) Save() error {
	if s.rootDir == "" {
		return errors.New("survey root directory not set")
	}
	if err := utils.EnsureDir(s.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	s.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(s)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(s.rootDir, surveyFileName), data)
}

// SetCurve replaces the survey's calibration curve. Existing validation
// output is cleared: it was computed against the old curve.
func (s *Survey) SetCurve(c chart.Curve) {
	s.Curve = c
	s.Records = nil
	s.Deliveries = nil
	s.Stats = nil
	s.UpdatedAt = time.Now()
}

// RecordPointValidation stores point-validation output and its stats.
func (s *Survey) RecordPointValidation(records []validation.ProcessedRecord, stats validation.Stats) {
	s.Records = records
	s.Stats = &stats
	s.UpdatedAt = time.Now()
}

// RecordDeliveryValidation stores delivery-validation output and its stats.
func (s *Survey) RecordDeliveryValidation(records []validation.DeliveryRecord, stats validation.Stats) {
	s.Deliveries = records
	s.Stats = &stats
	s.UpdatedAt = time.Now()
}
