package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/walteros-labs/maxclique/internal/clerr"
	"github.com/walteros-labs/maxclique/internal/clique"
	"github.com/walteros-labs/maxclique/internal/graphcore"
	"github.com/walteros-labs/maxclique/internal/graphio"
)

var verbose bool

// Execute is the entry point to running the CLI.
func Execute(version string) {
	var rootCmd = &cobra.Command{
		Use:   "maxclique FILE_TYPE PATH MODE [N_THREADS]",
		Short: "Find the maximum clique of a graph via the degeneracy/vertex-cover reduction.",
		Long: `maxclique reads a graph (edge list "-e" or adjacency list "-a"), computes a
degeneracy ordering, and either reports the degeneracy and the resulting
lower bound ("-d") or runs the full binary-search clique solver ("-m",
optionally bounded to N_THREADS workers).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(3, 4)(cmd, args); err != nil {
				return clerr.Wrap(clerr.UsageError, err, "usage: maxclique FILE_TYPE PATH MODE [N_THREADS]")
			}
			return nil
		},
		RunE:         run,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(clerr.ExitCode(err))
	}
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: !checkIfTerminal(os.Stderr),
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	fileType, err := graphio.ParseFileType(args[0])
	if err != nil {
		return err
	}
	path := args[1]
	mode := args[2]

	numThreads := runtime.NumCPU()
	if mode == "-m" && len(args) == 4 {
		if conv, err := strconv.Atoi(args[3]); err == nil && conv <= numThreads {
			numThreads = conv
		}
	}

	switch mode {
	case "-d":
		return runDegeneracy(path, fileType)
	case "-m":
		return runMaxClique(path, fileType, numThreads)
	default:
		return clerr.New(clerr.UsageError, `mode must be "-d" or "-m", got `+strconv.Quote(mode))
	}
}

func readGraph(path string, fileType graphio.FileType) (*graphcore.Graph, error) {
	begin := time.Now()
	n, adj, alias, err := graphio.Read(fileType, path)
	if err != nil {
		return nil, err
	}
	g, err := graphcore.New(n, adj, alias)
	if err != nil {
		return nil, clerr.Wrap(clerr.InternalInvariantViolation, err, "building graph store")
	}
	g.ReadTime = time.Since(begin)

	log.Debug("-------------------------------------------------------------")
	log.Debugf("Filename: %s\nn: %d\nm: %d\ndelta: %d\nDelta: %d\nReading time: %v",
		path, g.N, g.M, g.DegMin, g.DegMax, g.ReadTime.Seconds())
	log.Debug("-------------------------------------------------------------")
	return g, nil
}

func runDegeneracy(path string, fileType graphio.FileType) error {
	g, err := readGraph(path, fileType)
	if err != nil {
		return err
	}
	if err := g.Degeneracy(); err != nil {
		return clerr.Wrap(clerr.InternalInvariantViolation, err, "computing degeneracy ordering")
	}

	fmt.Printf("%s %d %d %d %d %v %d %d\n",
		path, g.N, g.M, g.DegMin, g.DegMax, g.ReadTime.Seconds(), g.D, g.CliqueLB)
	return nil
}

func runMaxClique(path string, fileType graphio.FileType, numThreads int) error {
	g, err := readGraph(path, fileType)
	if err != nil {
		return err
	}

	begin := time.Now()
	subgraphs := graphcore.NewSubgraphs(g.N)
	if err := g.DegeneracyOrdering(subgraphs); err != nil {
		return clerr.Wrap(clerr.InternalInvariantViolation, err, "computing degeneracy ordering")
	}
	degeneracyTime := time.Since(begin)

	cliqueUB := clique.FindMaxClique(g, subgraphs, numThreads)
	runningTime := time.Since(begin)

	log.Debugf("Number of threads used: %d", numThreads)
	log.Debugf("Degeneracy: %d", g.D)
	log.Debugf("Lower bound from degeneracy: %d", g.CliqueLB)
	log.Debugf("Maximum clique size: %d", cliqueUB)
	log.Debugf("Total running time: %v", runningTime.Seconds())
	log.Debug("-------------------------------------------------------------")

	fmt.Printf("%s %d %d %d %d %v %d %d %v %d %v %d\n",
		path, g.N, g.M, g.DegMin, g.DegMax, g.ReadTime.Seconds(),
		g.D, g.CliqueLB, degeneracyTime.Seconds(), cliqueUB, runningTime.Seconds(), numThreads)
	return nil
}
