package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	anita "github.com/anita-format/go-anita"
	"github.com/anita-format/go-anita/encode"
	"github.com/anita-format/go-anita/ir"
	"github.com/anita-format/go-anita/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a slash path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := ir.Resolve(node, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, path, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func fields(cfg *FieldsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fields.Parse(cc, args)
	if err != nil {
		cfg.Fields.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fields requires one argument, comma-separated terms", cli.ErrUsage)
	}
	terms := strings.Split(args[0], ",")
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := anita.OnlyFieldsLike(node, terms...)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
