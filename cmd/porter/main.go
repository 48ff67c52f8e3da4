package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/oarkflow/porter"
	"github.com/oarkflow/porter/tokenizer"
	"github.com/oarkflow/porter/web"
)

type options struct {
	config   string
	host     string
	port     string
	workers  int
	serve    bool
	json     bool
	tokenize bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := flag.NewFlagSet("porter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "JSON config file")
	fs.BoolVar(&opts.serve, "serve", false, "Start the stem server")
	fs.StringVar(&opts.host, "host", "", "Domain name or IP")
	fs.StringVar(&opts.port, "port", "", "Port available to be used on server")
	fs.IntVar(&opts.workers, "workers", 0, "Number of stemming workers")
	fs.BoolVar(&opts.json, "json", false, "Print results as JSON")
	fs.BoolVar(&opts.tokenize, "tokenize", false, "Tokenize each input line instead of stemming words")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

func loadConfig(opts *options) (*porter.Config, error) {
	cfg := porter.DefaultConfig()
	if opts.config != "" {
		var err error
		cfg, err = porter.LoadConfig(opts.config)
		if err != nil {
			return nil, err
		}
	}
	return porter.MergeConfigs(cfg, &porter.Config{
		Host:    opts.host,
		Port:    opts.port,
		Workers: opts.workers,
	}), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func stemWords(words []string, cfg *porter.Config, asJSON bool, stdout, stderr io.Writer) (int, error) {
	results := porter.StemBatch(words, cfg.Workers)
	if asJSON {
		data, err := json.Marshal(results)
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(stdout, string(data))
	} else {
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(stderr, "%s: %s\n", r.Word, r.Error)
				continue
			}
			fmt.Fprintln(stdout, r.Stem)
		}
	}
	if porter.Failed(results) {
		return 1, nil
	}
	return 0, nil
}

func tokenizeLines(lines []string, cfg *porter.Config, asJSON bool, stdout io.Writer) (int, error) {
	config := &tokenizer.Config{
		EnableStemming:  cfg.EnableStemming,
		EnableStopWords: cfg.EnableStopWords,
	}
	all := make([][]string, 0, len(lines))
	for _, line := range lines {
		tokens, err := tokenizer.Tokenize(&tokenizer.TokenizeParams{
			Text:            line,
			AllowDuplicates: cfg.AllowDuplicates,
		}, config)
		if err != nil {
			return 1, err
		}
		all = append(all, tokens)
	}
	if asJSON {
		data, err := json.Marshal(all)
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(stdout, string(data))
		return 0, nil
	}
	for _, tokens := range all {
		fmt.Fprintln(stdout, strings.Join(tokens, " "))
	}
	return 0, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, inputs, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error().Err(err).Str("path", opts.config).Msg("Unable to load config")
		return 1
	}
	if opts.serve {
		web.StartServer(cfg)
		return 0
	}
	if len(inputs) == 0 {
		inputs, err = readLines(stdin)
		if err != nil {
			log.Error().Err(err).Msg("Unable to read input")
			return 1
		}
	}
	var code int
	if opts.tokenize {
		code, err = tokenizeLines(inputs, cfg, opts.json, stdout)
	} else {
		code, err = stemWords(inputs, cfg, opts.json, stdout, stderr)
	}
	if err != nil {
		log.Error().Err(err).Msg("Unable to process input")
	}
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
