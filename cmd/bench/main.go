// bench - fast-input benchmark runner
//
// Compares the fastinput reader against a bufio.Scanner+strconv baseline
// over a generated integer corpus:
//   - wall time per pass
//   - throughput in MB/s
//
// Output: aligned summary table on stdout, progress on stderr.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KlasafGeijerstam/fast-input/fastinput"
)

type result struct {
	Name    string
	Elapsed time.Duration
	Sum     int64
}

func main() {
	lines := flag.Int("lines", 200000, "number of corpus lines")
	cols := flag.Int("cols", 4, "integers per line")
	passes := flag.Int("passes", 5, "passes per contender, best is reported")
	flag.Parse()

	corpus := buildCorpus(*lines, *cols)

	fmt.Fprintf(os.Stderr, "fast-input benchmark runner\n")
	fmt.Fprintf(os.Stderr, "===========================\n")
	fmt.Fprintf(os.Stderr, "Corpus: %d lines x %d ints (%d bytes), %d passes\n\n",
		*lines, *cols, len(corpus), *passes)

	results := []result{
		best("fastinput NextAsIter", *passes, func() int64 { return runFastInput(corpus) }),
		best("fastinput Lines+split", *passes, func() int64 { return runFastInputLines(corpus) }),
		best("bufio.Scanner baseline", *passes, func() int64 { return runScanner(corpus) }),
	}

	// All contenders must agree before the numbers mean anything.
	for _, r := range results[1:] {
		if r.Sum != results[0].Sum {
			fmt.Fprintf(os.Stderr, "sum mismatch: %s got %d, want %d\n", r.Name, r.Sum, results[0].Sum)
			os.Exit(1)
		}
	}

	fmt.Printf("%-24s %12s %10s\n", "contender", "time", "MB/s")
	for _, r := range results {
		mbps := float64(len(corpus)) / r.Elapsed.Seconds() / (1 << 20)
		fmt.Printf("%-24s %12s %10.1f\n", r.Name, r.Elapsed.Round(time.Microsecond), mbps)
	}
}

func buildCorpus(lines, cols int) []byte {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", (i*31+c*17)%100000-50000)
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func best(name string, passes int, fn func() int64) result {
	r := result{Name: name}
	for i := 0; i < passes; i++ {
		start := time.Now()
		sum := fn()
		elapsed := time.Since(start)
		if i == 0 || elapsed < r.Elapsed {
			r.Elapsed = elapsed
		}
		r.Sum = sum
	}
	return r
}

func runFastInput(corpus []byte) int64 {
	in := fastinput.NewFromReader(bytes.NewReader(corpus))
	var sum int64
	for in.HasMore() {
		for v := range fastinput.NextAsIter[int64](in) {
			sum += v
		}
	}
	return sum
}

func runFastInputLines(corpus []byte) int64 {
	in := fastinput.NewFromReader(bytes.NewReader(corpus))
	var sum int64
	for line := range in.Lines() {
		for tok := range strings.SplitSeq(strings.TrimSpace(line), " ") {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				panic(err)
			}
			sum += v
		}
	}
	return sum
}

func runScanner(corpus []byte) int64 {
	sc := bufio.NewScanner(bytes.NewReader(corpus))
	var sum int64
	for sc.Scan() {
		for _, tok := range strings.Split(strings.TrimSpace(sc.Text()), " ") {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				panic(err)
			}
			sum += v
		}
	}
	return sum
}
