package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alexflint/go-arg"
	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"linescan/scan"
)

type (
	Args struct {
		Split   *SplitCmd  `arg:"subcommand:split" help:"parse every token of a line as one type"`
		Record  *RecordCmd `arg:"subcommand:record" help:"parse lines with a fixed layout of typed fields"`
		One     *OneCmd    `arg:"subcommand:one" help:"parse each line as a single value"`
		Verbose bool       `arg:"-v,env:LINESCAN_VERBOSE" help:"log every line read to stderr"`
		Debug   bool       `arg:"env:LINESCAN_DEBUG" help:"dump parsed values to stderr"`
		NoColor bool       `arg:"--no-color" help:"print errors without colors"`
	}
	SplitCmd struct {
		Type  string `arg:"-t" default:"int" help:"type of every token" placeholder:"TYPE"`
		Sep   string `arg:"-s" help:"single character delimiter, whitespace when empty" placeholder:"C"`
		Lines int    `arg:"-n" default:"1" help:"number of lines to read" placeholder:"N"`
	}
	RecordCmd struct {
		Layout     string `arg:"-l" help:"key:type pairs" placeholder:"\"name:string age:int\""`
		LayoutFile string `arg:"-f,--layout-file" help:"YAML layout file" placeholder:"layout.yaml"`
		Lines      int    `arg:"-n" default:"1" help:"number of lines to read" placeholder:"N"`
	}
	OneCmd struct {
		Type  string `arg:"-t" default:"int" help:"type of the value" placeholder:"TYPE"`
		Lines int    `arg:"-n" default:"1" help:"number of lines to read" placeholder:"N"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read typed values from standard input, one line at a time.\n",
			"Every line is parsed completely or the command stops:",
			"malformed input is reported and the exit status is 1.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// typedReader erases the type parameter of the scan operations so a type
// picked at runtime can drive them.
type typedReader struct {
	split     func(r *scan.Reader) any
	splitWith func(r *scan.Reader, sep rune) any
	lines     func(r *scan.Reader, n int) any
}

func newTypedReader[T scan.Scalar]() typedReader {
	return typedReader{
		split: func(r *scan.Reader) any {
			return scan.Split[T](r)
		},
		splitWith: func(r *scan.Reader, sep rune) any {
			return scan.SplitWith[T](r, sep)
		},
		lines: func(r *scan.Reader, n int) any {
			return scan.Lines[T](r, n)
		},
	}
}

var typedReaders = map[string]typedReader{
	"int":     newTypedReader[int](),
	"int32":   newTypedReader[int32](),
	"int64":   newTypedReader[int64](),
	"uint":    newTypedReader[uint](),
	"uint64":  newTypedReader[uint64](),
	"float":   newTypedReader[float64](),
	"float32": newTypedReader[float32](),
	"float64": newTypedReader[float64](),
	"string":  newTypedReader[string](),
	"bool":    newTypedReader[bool](),
}

func lookupTypedReader(typeName string) (typedReader, error) {
	tr, ok := typedReaders[typeName]
	if !ok {
		return typedReader{}, errors.Errorf(
			`unknown type "%s", expected one of %v`,
			typeName, scan.LayoutTypes(),
		)
	}
	return tr, nil
}

type runner struct {
	reader *scan.Reader
	out    *json.Encoder
	errOut io.Writer
	debug  bool
}

func (r *runner) emit(values any) error {
	if r.debug {
		spew.Fdump(r.errOut, values)
	}
	if err := r.out.Encode(values); err != nil {
		return errors.Wrap(err, "error writing output")
	}
	return nil
}

// Run executes the chosen subcommand. Malformed input aborts the reads with a
// panic that is turned back into the returned error here.
func Run(args Args, reader *scan.Reader, out io.Writer, errOut io.Writer) (err error) {
	defer scan.Catch(&err)

	if args.Verbose {
		reader.SetLogger(log.New(errOut, "linescan: ", log.Lmsgprefix))
	}
	r := &runner{
		reader: reader,
		out:    json.NewEncoder(out),
		errOut: errOut,
		debug:  args.Debug,
	}

	switch {
	case args.Split != nil:
		return r.split(*args.Split)
	case args.Record != nil:
		return r.record(*args.Record)
	case args.One != nil:
		return r.one(*args.One)
	default:
		return errors.New("missing subcommand: one of split, record, one")
	}
}

func checkLines(n int) error {
	if n < 0 {
		return errors.Errorf("--lines must not be negative, got %d", n)
	}
	return nil
}

func (r *runner) split(cmd SplitCmd) error {
	if err := checkLines(cmd.Lines); err != nil {
		return err
	}
	tr, err := lookupTypedReader(cmd.Type)
	if err != nil {
		return err
	}
	read := tr.split
	if cmd.Sep != "" {
		if utf8.RuneCountInString(cmd.Sep) != 1 {
			return errors.Errorf(`--sep must be a single character, got "%s"`, cmd.Sep)
		}
		sep, _ := utf8.DecodeRuneInString(cmd.Sep)
		read = func(reader *scan.Reader) any {
			return tr.splitWith(reader, sep)
		}
	}
	for i := 0; i < cmd.Lines; i++ {
		if err := r.emit(read(r.reader)); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) record(cmd RecordCmd) error {
	if err := checkLines(cmd.Lines); err != nil {
		return err
	}
	fields, err := recordFields(cmd)
	if err != nil {
		return err
	}
	for i := 0; i < cmd.Lines; i++ {
		if err := r.emit(scan.RecordMap(r.reader, fields)); err != nil {
			return err
		}
	}
	return nil
}

func recordFields(cmd RecordCmd) ([]scan.Field, error) {
	switch {
	case cmd.Layout != "" && cmd.LayoutFile != "":
		return nil, errors.New("--layout and --layout-file are mutually exclusive")
	case cmd.Layout != "":
		return scan.ParseLayout(cmd.Layout)
	case cmd.LayoutFile != "":
		return LoadLayout(cmd.LayoutFile)
	default:
		return nil, errors.New("one of --layout or --layout-file is required")
	}
}

func (r *runner) one(cmd OneCmd) error {
	tr, err := lookupTypedReader(cmd.Type)
	if err != nil {
		return err
	}
	return r.emit(tr.lines(r.reader, cmd.Lines))
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if err := Run(args, scan.Stdin(), os.Stdout, os.Stderr); err != nil {
		au := aurora.NewAurora(!args.NoColor)
		fmt.Fprintln(os.Stderr, au.Red(err.Error()))
		os.Exit(1)
	}
}
