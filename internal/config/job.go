package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

// Job describes a flattening job stored in a YAML file:
//
//	mode: raw
//	steps: 8
//	points: [0, 0, 0, 10, 10, 10, 10, 0]
//
// Zero Steps and Mode leave the corresponding setting to the environment.
type Job struct {
	Steps  int         `yaml:"steps,omitempty"`
	Mode   spline.Mode `yaml:"mode,omitempty"`
	Points []float64   `yaml:"points,flow"`
}

// Knots returns the job's points as knots.
func (j Job) Knots() ([]spline.Point, error) {
	return spline.PointsFromCoords(j.Points)
}

// ParseJob decodes a job from YAML. Unknown fields are rejected.
func ParseJob(data []byte) (Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var job Job
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, errors.New("empty job document")
		}
		return Job{}, err
	}
	if job.Steps < 0 {
		return Job{}, fmt.Errorf("steps must be positive, got %d", job.Steps)
	}
	if len(job.Points) == 0 {
		return Job{}, errors.New("job has no points")
	}
	return job, nil
}

// LoadJob reads and decodes the job file at path.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("read job file %q: %w", path, err)
	}
	job, err := ParseJob(data)
	if err != nil {
		return Job{}, fmt.Errorf("parse job file %q: %w", path, err)
	}
	return job, nil
}

// Marshal encodes the job as YAML.
func (j Job) Marshal() ([]byte, error) {
	return yaml.Marshal(j)
}
