package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// AgentConfig identifies the policy of agent 0 in an experiment.
type AgentConfig struct {
	ID         int
	Policy     string
	Evaluation string
	Depth      int
	Seed       uint64
	Estimator  string
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	RunID   uuid.UUID
	baseDir string
}

// NewWriter creates the output directory of one experiment run under
// root/name, named by a fresh run ID.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.New()
	baseDir := filepath.Join(root, name, runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"run", "id", "policy", "evaluation", "depth", "seed", "estimator"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			w.RunID.String(),
			strconv.Itoa(config.ID),
			config.Policy,
			config.Evaluation,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
			config.Estimator,
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"run", "id", "agent", "win", "lose", "score", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			w.RunID.String(),
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatBool(record.Win),
			strconv.FormatBool(record.Lose),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"run", "game", "step", "action", "variant", "depth", "duration", "nodes", "prunes", "value"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			w.RunID.String(),
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Action,
			record.Variant,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Prunes),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
