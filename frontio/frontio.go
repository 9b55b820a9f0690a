package frontio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/hvgo/model"
)

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("frontio: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses every front in r, decompressing it first if needed.
func Read(r io.Reader) ([]model.Front, error) {
	rc, _, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}

// ReadFile reads the fronts stored in the named file.
func ReadFile(name string) ([]model.Front, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Parse reads uncompressed WFG text. Fronts are returned row-major in file
// order; a separator with no points before it does not produce a front.
func Parse(r io.Reader) ([]model.Front, error) {
	var (
		fronts []model.Front
		cur    model.Front
	)
	flush := func() {
		if cur.Points > 0 {
			fronts = append(fronts, cur)
		}
		cur = model.Front{}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text[0] == '#' {
			flush()
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if cur.Points == 0 {
			cur.Objectives = len(fields)
		} else if len(fields) != cur.Objectives {
			return nil, &ParseError{Line: line, Err: &model.DimensionMismatchError{Expected: cur.Objectives, Actual: len(fields)}}
		}
		for _, fld := range fields {
			v, err := strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Err: &model.InvalidInputError{Reason: fmt.Sprintf("%q is not a number", fld)}}
			}
			cur.Data = append(cur.Data, v)
		}
		cur.Points++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return fronts, nil
}

// Write emits fronts in WFG text, each preceded by a separator line and the
// last one followed by one.
func Write(w io.Writer, fronts []model.Front) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, f := range fronts {
		if err := f.Validate(); err != nil {
			return err
		}
		bw.WriteString("#\n")
		for i := 0; i < f.Points; i++ {
			buf = buf[:0]
			for j := 0; j < f.Objectives; j++ {
				if j > 0 {
					buf = append(buf, ' ')
				}
				buf = strconv.AppendFloat(buf, f.At(i, j), 'g', -1, 64)
			}
			buf = append(buf, '\n')
			bw.Write(buf)
		}
	}
	bw.WriteString("#\n")
	return bw.Flush()
}
