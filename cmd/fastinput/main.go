// fastinput - exercise the fast-input reader from the command line
//
// Usage:
//
//	fastinput lines [file]    Echo input lines with line numbers
//	fastinput sum [file]      Sum every integer in the input
//	fastinput pairs [file]    Read "name age" pairs and print them sorted
//	fastinput version         Print version info
//
// If no file is given, input is read from stdin (end with Ctrl+D).
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KlasafGeijerstam/fast-input/fastinput"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	flagBufSize      int
	flagValidateUTF8 bool
	flagDecompress   bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fastinput",
		Short:         "Read and parse line/token input fast",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&flagBufSize, "bufsize", fastinput.DefaultBufferSize, "initial read buffer capacity in bytes")
	root.PersistentFlags().BoolVar(&flagValidateUTF8, "validate-utf8", false, "reject input that is not well-formed UTF-8")
	root.PersistentFlags().BoolVarP(&flagDecompress, "decompress", "z", false, "transparently decompress gzip/zstd input")

	root.AddCommand(newLinesCommand())
	root.AddCommand(newSumCommand())
	root.AddCommand(newPairsCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// openInput builds an Input from the optional file argument, or stdin.
func openInput(args []string) (*fastinput.Input, error) {
	var src io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	opts := []fastinput.Option{fastinput.WithBufferSize(flagBufSize)}
	if flagValidateUTF8 {
		opts = append(opts, fastinput.WithUTF8Validation())
	}
	if flagDecompress {
		opts = append(opts, fastinput.WithDecompression())
	}

	var in *fastinput.Input
	err := catching(func() { in = fastinput.NewFromReader(src, opts...) })
	return in, err
}

// catching converts the reader's fatal panics into returned errors so cobra
// can report them.
func catching(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func newLinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines [file]",
		Short: "Echo input lines with line numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			n := 0
			for line := range in.Lines() {
				n++
				fmt.Printf("%6d  %s\n", n, line)
			}
			return nil
		},
	}
}

func newSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [file]",
		Short: "Sum every integer in the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			var sum, count int64
			err = catching(func() {
				for in.HasMore() {
					for v := range fastinput.NextAsIter[int64](in) {
						sum += v
						count++
					}
				}
			})
			if err != nil {
				return err
			}
			fmt.Printf("%d integers, sum %d\n", count, sum)
			return nil
		},
	}
}

func newPairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs [file]",
		Short: `Read "name age" pairs and print them sorted by name`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			ages := map[string]uint16{}
			err = catching(func() {
				for in.HasMore() {
					name, age := fastinput.NextTuple[fastinput.Str, uint16](in)
					ages[string(name)] = age
				}
			})
			if err != nil {
				return err
			}
			names := make([]string, 0, len(ages))
			for name := range ages {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s\t%d\n", name, ages[name])
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fastinput %s\n", Version)
		},
	}
}
