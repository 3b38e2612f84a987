package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-inputmask/pkg/field"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// maskFlags selects a mask either by format or by name in the loaded set.
type maskFlags struct {
	format   string
	affine   []string
	affinity string
	name     string
	rtl      bool
}

// record is the JSON form of one formatted input.
type record struct {
	Input           string `json:"input"`
	Formatted       string `json:"formatted"`
	Value           string `json:"value"`
	Complete        bool   `json:"complete"`
	Caret           int    `json:"caret"`
	TailPlaceholder string `json:"tail_placeholder,omitempty"`
	Country         string `json:"country,omitempty"`
}

func (f *maskFlags) selector() (selector.Selector, bool, error) {
	if f.name != "" {
		set, err := loadSet()
		if err != nil {
			return nil, false, err
		}
		def, err := set.Get(f.name)
		if err != nil {
			return nil, false, err
		}
		sel, err := set.Selector(f.name)
		return sel, def.RightToLeft || f.rtl, err
	}
	sel, err := compileSelector(f.format, f.affine, f.affinity, f.rtl)
	return sel, f.rtl, err
}

func compileSelector(format string, affine []string, affinity string, rtl bool) (selector.Selector, error) {
	if format == "" {
		return nil, errors.New("either --mask or --name is required")
	}
	strategy, err := mask.ParseAffinityStrategy(affinity)
	if err != nil {
		return nil, err
	}

	cache := mask.NewCache()
	get := func(f string) (*mask.Mask, error) {
		if rtl {
			f = mask.ReverseFormat(f)
		}
		return cache.Get(f)
	}

	primary, err := get(format)
	if err != nil {
		return nil, err
	}
	if len(affine) == 0 {
		return selector.NewSingle(primary), nil
	}
	masks := make([]*mask.Mask, 0, len(affine))
	for _, f := range affine {
		m, err := get(f)
		if err != nil {
			return nil, err
		}
		masks = append(masks, m)
	}
	return selector.NewPoly(primary, masks, strategy), nil
}

// format runs text through a fresh field. A negative caret places it at the
// end of the text.
func format(sel selector.Selector, text string, caret int, autocomplete, rtl bool) (field.EditState, error) {
	f, err := field.New(sel,
		field.WithAutocomplete(autocomplete),
		field.WithRightToLeft(rtl),
		field.WithLogger(logger()),
	)
	if err != nil {
		return field.EditState{}, err
	}
	if caret < 0 {
		state, _ := f.SetText(text)
		return state, nil
	}
	state, _ := f.TextChanged(field.Change{Text: text, Start: caret})
	return state, nil
}

// inputs returns args, or the lines of r when no argument is given.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func newRecord(input string, state field.EditState) record {
	return record{
		Input:           input,
		Formatted:       state.Text,
		Value:           state.Value,
		Complete:        state.Complete,
		Caret:           state.Caret,
		TailPlaceholder: state.TailPlaceholder,
	}
}

func writeRecord(w io.Writer, asJSON bool, rec record) error {
	if asJSON {
		return json.NewEncoder(w).Encode(rec)
	}
	if rec.Country != "" {
		_, err := fmt.Fprintf(w, "%s\t%s\n", rec.Formatted, rec.Country)
		return err
	}
	_, err := fmt.Fprintln(w, rec.Formatted)
	return err
}
