package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/config"
	"github.com/awmpietro/algoviz/internal/graphviz"
	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "algoviz",
		Short:        "Run instrumented algorithms and print their step traces",
		SilenceUsage: true,
	}
	root.AddCommand(
		newSolveCmd(),
		newCompareCmd(),
		newDotCmd(),
		newListCmd(),
	)
	return root
}

// newService builds a service that logs to stderr at the configured level,
// leaving stdout for results.
func newService() (*app.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, "text")
	return app.NewService(app.WithLogger(logger), app.WithMaxTraceCells(cfg.MaxTraceCells)), nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("an input file is required (-f)")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func isDOT(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dot")
}

// readGraphInput accepts either a DOT file or a JSON graph request body.
func readGraphInput(cmd *cobra.Command, path, start string) (*model.GraphInput, error) {
	raw, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	in := &model.GraphInput{}
	if isDOT(path) {
		g, err := graphviz.Parse(string(raw))
		if err != nil {
			return nil, err
		}
		in.Graph = g
	} else if err := json.Unmarshal(raw, in); err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrInvalidJSON, err)
	}
	if start != "" {
		in.StartNode = start
	}
	return in, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
