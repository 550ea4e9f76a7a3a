package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/voicelab/pitchmark/algorithms/temporal"
	"github.com/voicelab/pitchmark/algorithms/tonal"
	"github.com/voicelab/pitchmark/audioio"
	"github.com/voicelab/pitchmark/contour"
	"github.com/voicelab/pitchmark/export"
	"github.com/voicelab/pitchmark/logging"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Data    string `short:"d" default:"data" help:"Folder holding the .wav recordings to process"`
	Out     string `short:"o" default:"output.xlsx" help:"Output workbook path"`
	LogFile string `default:"process.log" help:"Process log path, truncated per run (empty to disable)"`

	GapFill   bool    `help:"Enable reference-scan gap filling (20-mark preset with a time-axis reset)"`
	Marks     int     `default:"0" help:"Coarse time marks per file (0 keeps the preset: 10, or 20 with --gap-fill)"`
	ResetMark int     `default:"-1" help:"0-based mark index where the time axis restarts (-1 keeps the preset)"`
	MaxHz     float64 `default:"350" help:"Artifact ceiling for segment estimates, in Hz"`
	MinHz     float64 `default:"75" help:"Gap-filling floor, in Hz"`
	Prescan   int     `default:"300" help:"Reference-scan resolution (gap-fill only)"`
	TrimDB    float64 `default:"30" help:"Silence-trim threshold below peak, in dB"`
	Verbose   bool    `help:"Enable debug logging"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("pitchmark"),
		kong.Description("Batch voice pitch-contour extraction: one smoothed Hz value per time mark per recording"),
		kong.UsageOnError(),
	)

	if cli.Version {
		fmt.Printf("pitchmark %s\n", version)
		os.Exit(0)
	}

	if cli.LogFile != "" {
		logFile, err := os.Create(cli.LogFile)
		if err != nil {
			logging.Fatal(err, "cannot open log file", logging.Fields{"path": cli.LogFile})
		}
		defer logFile.Close()
		logging.SetGlobalLogger(logging.NewTeeLogger(logFile))
	}
	if cli.Verbose {
		logging.SetLevel(logging.DebugLevel)
	}

	config := buildConfig(cli)
	if err := run(cli, config); err != nil {
		logging.Fatal(err, "processing aborted")
	}
}

// buildConfig maps CLI flags onto a pipeline configuration, starting from
// the preset the --gap-fill flag selects
func buildConfig(cli *CLI) *contour.Config {
	config := contour.DefaultConfig()
	if cli.GapFill {
		config = contour.GapFillConfig()
	}

	if cli.Marks > 0 {
		config.TimeMarks = cli.Marks
	}
	if cli.ResetMark >= 0 {
		config.ResetMark = cli.ResetMark
	}
	config.MaxValidHz = cli.MaxHz
	if cli.GapFill {
		config.MinValidHz = cli.MinHz
		config.PreScanMarks = cli.Prescan
	}

	return config
}

func run(cli *CLI, config *contour.Config) error {
	logging.Info("===== start processing =====", logging.Fields{
		"data":     cli.Data,
		"out":      cli.Out,
		"gap_fill": config.GapFill,
		"marks":    config.TimeMarks,
	})

	entries, err := os.ReadDir(cli.Data)
	if err != nil {
		return fmt.Errorf("input folder %q not found: %w", cli.Data, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			files = append(files, entry.Name())
		}
	}
	logging.Info("found wav files", logging.Fields{"count": len(files)})

	pipeline, err := contour.NewPipeline(config, tonal.NewTracker())
	if err != nil {
		return err
	}

	trimmer := temporal.NewSilenceTrimmerWithParams(temporal.TrimParams{
		TopDB:       cli.TrimDB,
		FrameLength: temporal.DefaultTrimParams().FrameLength,
		HopLength:   temporal.DefaultTrimParams().HopLength,
	})

	var results []contour.MarkResult
	for i, name := range files {
		logging.Info(fmt.Sprintf("[%d/%d] %s", i+1, len(files), name))

		waveform, err := audioio.Load(filepath.Join(cli.Data, name))
		if err != nil {
			logging.Error(err, "skipping undecodable file", logging.Fields{"file": name})
			continue
		}

		trimmed := trimmer.Trim(waveform.Samples)
		results = append(results, pipeline.Process(name, trimmed, waveform.SampleRate)...)
	}

	if err := export.NewXLSXWriter(cli.Out).Write(results); err != nil {
		return err
	}

	logging.Info("===== done =====", logging.Fields{
		"rows":   len(results),
		"output": cli.Out,
	})

	return nil
}
