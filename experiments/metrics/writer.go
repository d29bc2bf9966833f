package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// AgentConfig describes how an agent of a battle is built.
type AgentConfig struct {
	ID        int
	Random    bool          `json:",omitempty"` // Plays random legal moves, ignores the rest
	Duration  time.Duration `json:",omitempty"`
	Depth     int           `json:",omitempty"` // Maximum depth, 0 for the default
	Rater     string        `json:",omitempty"` // "default", "fish" or "early"
	Admission int           `json:",omitempty"` // Table min depth, negative disables the table
}

type GameRecord struct {
	ID     int
	Seed   uint64
	Agent1 int // AgentConfig.ID of team One
	Agent2 int // AgentConfig.ID of team Two
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for the experiment below dir.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores any experiment description as setup.json.
func (w *Writer) WriteSetup(setup any) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "agent1", "agent2", "start_team", "winner", "fish_one", "fish_two",
		"moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartTeam,
			record.Winner,
			strconv.Itoa(record.FishOne),
			strconv.Itoa(record.FishTwo),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "team", "move", "duration", "depth", "score", "nodes", "table_hits", "researches"}
	return w.writeCSV("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Team,
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.TableHits),
			strconv.Itoa(record.Researches),
		}
	})
}

func (w *Writer) writeCSV(name string, header []string, rows int, row func(i int) []string) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	writer := csv.NewWriter(f)
	defer func() {
		var result *multierror.Error
		if err != nil {
			result = multierror.Append(result, err)
		}
		writer.Flush()
		if ferr := writer.Error(); ferr != nil {
			result = multierror.Append(result, ferr)
		}
		if cerr := f.Close(); cerr != nil {
			result = multierror.Append(result, cerr)
		}
		err = result.ErrorOrNil()
	}()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}
	return nil
}
