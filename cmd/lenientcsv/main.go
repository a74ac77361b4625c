// Command lenientcsv parses CSV files with the escape-free lenient parser
// and prints the records as JSON lines.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/dmlogic/csv/pkg/lenientcsv"
	"github.com/dmlogic/csv/pkg/linesource"
)

var ErrControlByte = errors.New("control characters must be single bytes")

// Context carries global flags into commands.
type Context struct {
	Verbose bool
}

// ParseCmd reads a CSV file and writes one JSON array per record.
type ParseCmd struct {
	File      string `arg:"" help:"CSV file to parse." type:"existingfile"`
	Delimiter string `short:"d" help:"Field delimiter." default:","`
	Enclosure string `short:"e" help:"Quote character." default:"\""`
	Profile   string `short:"p" help:"Named dialect from the profile file."`
	Profiles  string `help:"YAML dialect profile file." default:"dialects.yaml"`
	Sniff     bool   `help:"Detect the delimiter from the file instead of using --delimiter."`
}

func (cmd *ParseCmd) Run(ctx *Context) error {
	opts, err := cmd.options()
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.File)
	if err != nil {
		return err
	}
	defer f.Close()

	if cmd.Sniff {
		opts.Delimiter, err = sniffFile(f, opts.Enclosure)
		if err != nil {
			return err
		}
		if ctx.Verbose {
			color.Blue("detected delimiter %q", string(opts.Delimiter))
		}
	}

	if err := opts.Validate(); err != nil {
		return err
	}
	if ctx.Verbose {
		color.Blue("parsing %s", cmd.File)
	}

	src := linesource.NewFile(f).SetControl(linesource.Control{
		Delimiter: opts.Delimiter,
		Enclosure: opts.Enclosure,
	})
	scanner, err := lenientcsv.NewScanner(src)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	count := 0
	for scanner.Scan() {
		if err := enc.Encode(scanner.Record().Strings()); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if ctx.Verbose {
		color.Green("%d records", count)
	}
	return nil
}

// options resolves control characters from flags or the selected profile.
func (cmd *ParseCmd) options() (lenientcsv.Options, error) {
	opts := lenientcsv.DefaultOptions()

	if cmd.Profile != "" {
		profiles, err := LoadProfiles(cmd.Profiles)
		if err != nil {
			return opts, fmt.Errorf("load profiles: %w", err)
		}
		dialect, err := profiles.Dialect(cmd.Profile)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = dialect.delimiter()
		opts.Enclosure = dialect.enclosure()
		return opts, nil
	}

	if len(cmd.Delimiter) != 1 || len(cmd.Enclosure) != 1 {
		return opts, ErrControlByte
	}
	opts.Delimiter = cmd.Delimiter[0]
	opts.Enclosure = cmd.Enclosure[0]
	return opts, nil
}

// SniffCmd detects and prints the delimiter of a CSV file.
type SniffCmd struct {
	File      string `arg:"" help:"CSV file to inspect." type:"existingfile"`
	Enclosure string `short:"e" help:"Quote character." default:"\""`
}

func (cmd *SniffCmd) Run(ctx *Context) error {
	if len(cmd.Enclosure) != 1 {
		return ErrControlByte
	}

	f, err := os.Open(cmd.File)
	if err != nil {
		return err
	}
	defer f.Close()

	delim, err := sniffFile(f, cmd.Enclosure[0])
	if err != nil {
		return err
	}
	fmt.Printf("%q\n", string(delim))
	return nil
}

// sniffSampleSize bounds how much of a file delimiter detection reads.
const sniffSampleSize = 64 * 1024

// sniffFile detects the delimiter from the head of f and seeks back to
// the start.
func sniffFile(f *os.File, enclosure byte) (byte, error) {
	sample := make([]byte, sniffSampleSize)
	n, err := f.ReadAt(sample, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("sniff %s: %w", f.Name(), err)
	}
	return lenientcsv.DetectDelimiter(string(sample[:n]), enclosure), nil
}

// CLI is the command-line interface.
var CLI struct {
	Verbose bool     `short:"v" help:"Enable verbose output."`
	Parse   ParseCmd `cmd:"" help:"Parse a CSV file and print records as JSON lines."`
	Sniff   SniffCmd `cmd:"" help:"Detect the field delimiter of a CSV file."`
}

func main() {
	ctx := kong.Parse(&CLI)

	err := ctx.Run(&Context{Verbose: CLI.Verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}
