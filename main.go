package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmltools/parser"
	"github.com/heathj/htmltools/parser/stache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	mode     string
	textMode parser.TextMode
	stache   bool
	debug    bool
	path     string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("htmltools", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "tree", "output: tokens, tree, html or json")
	textMode := fs.String("text-mode", "none", "parse the input as text: none, string or rcdata")
	useStache := fs.Bool("stache", false, "recognize {{...}} template tags")
	debug := fs.Bool("debug", false, "log every token to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: htmltools [options] [file]\n\nParses an HTML fragment from file or stdin.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	tm, err := parser.ParseTextMode(*textMode)
	if err != nil {
		return nil, err
	}
	switch *mode {
	case "tokens", "tree", "html", "json":
	default:
		return nil, errors.Errorf("unknown mode %q", *mode)
	}
	if fs.NArg() > 1 {
		return nil, errors.New("at most one file argument is allowed")
	}

	return &config{
		mode:     *mode,
		textMode: tm,
		stache:   *useStache,
		debug:    *debug,
		path:     fs.Arg(0),
	}, nil
}

func (c *config) options(stderr io.Writer) *parser.Options {
	logger := logrus.New()
	logger.SetOutput(stderr)
	if c.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	opts := &parser.Options{TextMode: c.textMode, Logger: logger}
	if c.stache {
		opts.TemplateTags = stache.Source{Logger: logger}
	}
	return opts
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), errors.Wrap(err, "reading stdin")
	}
	b, err := os.ReadFile(path)
	return string(b), errors.Wrapf(err, "reading %s", path)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	input, err := readInput(cfg.path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := run(cfg, input, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config, input string, stdout, stderr io.Writer) error {
	opts := cfg.options(stderr)

	if cfg.mode == "tokens" {
		tokens, err := parser.Tokenize(input, opts)
		for _, tok := range tokens {
			fmt.Fprintln(stdout, describeToken(tok))
		}
		return err
	}

	node, err := parser.ParseFragment(input, opts)
	if err != nil {
		return err
	}

	switch cfg.mode {
	case "tree":
		_, err = fmt.Fprintln(stdout, parser.Dump(node))
	case "html":
		if err = parser.Render(stdout, node); err == nil {
			_, err = fmt.Fprintln(stdout)
		}
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = errors.Wrap(enc.Encode(toJSON(node)), "encoding json")
	}
	return err
}

func describeToken(tok *parser.Token) string {
	switch tok.TokenType {
	case parser.TagToken:
		slash := ""
		if tok.IsEnd {
			slash = "/"
		}
		attrs := 0
		if tok.Attributes != nil {
			attrs = len(tok.Attributes.Static) + len(tok.Attributes.TemplateTags)
		}
		return fmt.Sprintf("Tag <%s%s> attrs=%d selfClosing=%t", slash, tok.TagName, attrs, tok.SelfClosing)
	case parser.CharRefToken:
		return fmt.Sprintf("CharRef %s %U", tok.Data, tok.CodePoints)
	case parser.DoctypeToken:
		return fmt.Sprintf("Doctype %s public=%q system=%q", tok.Name, tok.PublicIdentifier, tok.SystemIdentifier)
	case parser.TemplateTagToken:
		return "TemplateTag " + tok.TemplateTag.String()
	}
	return fmt.Sprintf("%s %q", tok.TokenType, tok.Data)
}

func toJSON(n parser.Node) any {
	switch v := n.(type) {
	case nil:
		return nil
	case parser.Text:
		return map[string]any{"type": "text", "value": string(v)}
	case *parser.CharRef:
		return map[string]any{"type": "charref", "html": v.HTML, "str": v.Str}
	case *parser.Comment:
		return map[string]any{"type": "comment", "value": v.Value}
	case *parser.TemplateTag:
		out := map[string]any{"type": "templatetag", "value": v.String()}
		if tag, ok := v.Value.(*stache.Tag); ok && tag.Content != nil {
			out["content"] = toJSON(tag.Content)
		}
		return out
	case parser.Sequence:
		items := make([]any, 0, len(v))
		for _, c := range v {
			items = append(items, toJSON(c))
		}
		return items
	case *parser.Element:
		out := map[string]any{"type": "element", "name": v.Name}
		if v.Attrs != nil {
			out["attrs"] = attrsJSON(v.Attrs)
		}
		if len(v.Children) > 0 {
			out["children"] = toJSON(parser.Sequence(v.Children))
		}
		return out
	}
	return fmt.Sprintf("%v", n)
}

func attrsJSON(attrs parser.Attrs) any {
	switch a := attrs.(type) {
	case parser.StaticAttrs:
		out := make([]any, 0, len(a))
		for _, attr := range a {
			out = append(out, map[string]any{"name": attr.Name, "value": toJSON(attr.Value)})
		}
		return out
	case parser.MixedAttrs:
		out := make([]any, 0, len(a))
		for _, src := range a {
			switch s := src.(type) {
			case parser.StaticAttrs:
				out = append(out, attrsJSON(s))
			case *parser.TemplateTag:
				out = append(out, toJSON(s))
			}
		}
		return out
	}
	return nil
}
