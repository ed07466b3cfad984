// Command linebreak wraps text at Unicode line-break opportunities, or (in
// -debug mode) prints the resolved class and break classification of every
// scalar in its input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	linebreak "github.com/scalecode-solutions/linebreak"
)

// config is the optional YAML configuration file shape; any field left
// unset in the file falls back to its flag default.
type config struct {
	Width int `yaml:"width"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("linebreak: ")

	width := flag.Int("width", 0, "wrap width in scalars (0: detect terminal width, falling back to 80)")
	configPath := flag.String("config", "", "optional YAML config file (width)")
	debug := flag.Bool("debug", false, "print per-scalar class and break classification instead of wrapping")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width != 0 {
		cfg.Width = *width
	}
	if cfg.Width <= 0 {
		cfg.Width = detectWidth()
	}

	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	text := string(data)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *debug {
		dumpClasses(out, text)
		return
	}
	for _, line := range wrap(text, cfg.Width) {
		fmt.Fprintln(out, line)
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// detectWidth asks the terminal for its column count when stdout is a
// terminal, falling back to a conventional 80 columns otherwise (piped
// output, redirected to a file, and so on).
func detectWidth() int {
	const fallback = 80
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// wrap greedily breaks text into lines no longer than width scalars,
// preferring the last break opportunity at or before the limit and falling
// back to a hard break only when a single run has no opportunity at all.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	br := linebreak.NewBreaker(runes)

	var lines []string
	lineStart := 0
	lastOpportunity := -1

	for i := 0; ; i++ {
		_, b, ok := br.Next()
		if !ok {
			break
		}
		switch b {
		case linebreak.Mandatory:
			lines = append(lines, string(runes[lineStart:i+1]))
			lineStart = i + 1
			lastOpportunity = -1
			continue
		case linebreak.Opportunity:
			lastOpportunity = i
		}
		if i+1-lineStart >= width {
			cut := i
			if lastOpportunity >= lineStart {
				cut = lastOpportunity
			}
			lines = append(lines, string(runes[lineStart:cut+1]))
			lineStart = cut + 1
			lastOpportunity = -1
		}
	}
	if lineStart < len(runes) {
		lines = append(lines, string(runes[lineStart:]))
	}
	return lines
}

// dumpClasses prints "scalar class break" for every scalar in text, in the
// teacher's debug-dump style: one line per scalar, nothing summarized away.
func dumpClasses(w io.Writer, text string) {
	runes := []rune(text)
	br := linebreak.NewBreaker(runes)
	for _, r := range runes {
		_, b, ok := br.Next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "%-8U %-3s %s\n", r, linebreak.ClassOf(r), b)
	}
}
