package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"hackasm/assembler"
)

// hackasm reads hack assemble code files (.asm) and writes the corresponding
// hack machine language next to them (.hack).

const (
	sourceExt = ".asm"
	outputExt = ".hack"
)

type options struct {
	output  string
	listing bool
	symbols bool
	jobs    int
}

type result struct {
	path    string
	words   []assembler.Word
	symbols *assembler.SymbolTable
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "hackasm [flags] file.asm...",
		Short: "Assemble hack assemble code into hack binary code",
		Long: `hackasm translates programs written in the hack assemble language into
the 16 bits binary instructions executed by the hack CPU. Every file.asm given on
the command line produces file.hack, one binary word per line.

Several files are assembled in parallel. Output is only written for files that
assemble without error.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "the output hack binary code file path, only with a single input")
	flags.BoolVarP(&opts.listing, "listing", "l", false, "print every binary word next to its source line")
	flags.BoolVar(&opts.symbols, "symbols", false, "print the resolved symbol table")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "how many files to assemble at once")
	// glog's -v controls trace output of label and variable bindings.
	flags.AddGoFlagSet(goflag.CommandLine)
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, args []string) error {
	if opts.output != "" && len(args) > 1 {
		return fmt.Errorf("-o can only be used with a single input file, got %d", len(args))
	}
	for _, path := range args {
		if !strings.HasSuffix(path, sourceExt) {
			return fmt.Errorf("expected assembly file with filename ending in '%s', got %q", sourceExt, path)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]*result, len(args))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			res, err := assembleFile(ctx, path, outputPath(path, opts.output))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()

	printer := pp.New()
	printer.SetColoringEnabled(out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())))
	for _, res := range results {
		if res == nil {
			continue
		}
		if opts.listing {
			fmt.Fprintf(out, "%s:\n%s", res.path, assembler.Listing(res.words))
		}
		if opts.symbols {
			fmt.Fprintf(out, "%s symbols:\n", res.path)
			printer.Fprintln(out, res.symbols.Entries())
		}
	}
	return err
}

func outputPath(path, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(path, sourceExt) + outputExt
}

func assembleFile(ctx context.Context, path, output string) (*result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	glog.Infof("%s: translating", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	lines, err := assembler.ReadLines(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	asm := assembler.CreateAssembler()
	words, err := asm.Assemble(lines)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := saveWords(output, words); err != nil {
		return nil, err
	}
	glog.Infof("%s: %d words written to %s in %s", path, len(words), output, time.Since(start))
	return &result{path: path, words: words, symbols: asm.Symbols()}, nil
}

// saveWords removes the output again if it could not be written completely.
func saveWords(output string, words []assembler.Word) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = assembler.WriteWords(f, words)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(output)
		return fmt.Errorf("failed to save to path: %s, err: %w", output, err)
	}
	return nil
}

func main() {
	goflag.Set("logtostderr", "true")
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("assembly failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
