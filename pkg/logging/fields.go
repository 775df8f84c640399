package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers

// Stage names a pipeline stage
func Stage(name string) Field {
	return String("stage", name)
}

// RunID tags entries with the pipeline run identifier
func RunID(id string) Field {
	return String("run_id", id)
}

// Player identifies a player vertex
func Player(id string) Field {
	return String("player", id)
}

// TeamSeason identifies a team-season roster group
func TeamSeason(label string) Field {
	return String("team_season", label)
}

// Rows counts game-log rows
func Rows(n int) Field {
	return Int("rows", n)
}

// Edges counts teammate edges
func Edges(n int) Field {
	return Int("edges", n)
}

// Vertices counts graph vertices
func Vertices(n int) Field {
	return Int("vertices", n)
}

// Communities counts detected communities
func Communities(n int) Field {
	return Int("communities", n)
}

// Modularity reports a partition quality score
func Modularity(q float64) Field {
	return Float64("modularity", q)
}

// Latency reports an operation duration
func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

// Path reports a file path
func Path(p string) Field {
	return String("path", p)
}
