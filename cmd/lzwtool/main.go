// Command lzwtool encodes and decodes PDF/TIFF LZW streams.
//
// Usage:
//
//	lzwtool encode [-early=true] [-verify] [-in file] [-out file]
//	lzwtool decode [-early=true] [-strict] [-in file] [-out file]
//
// Input defaults to stdin and output to stdout.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/pdflzw/internal/hash"
	"github.com/arloliu/pdflzw/lzw"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzwtool: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	early  bool
	strict bool
	verify bool
	in     string
	out    string
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command: encode or decode")
	}
	cmd := args[0]

	var cfg config
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.early, "early", true, "use early change (the PDF default)")
	fs.StringVar(&cfg.in, "in", "", "input file (default stdin)")
	fs.StringVar(&cfg.out, "out", "", "output file (default stdout)")
	switch cmd {
	case "encode":
		fs.BoolVar(&cfg.verify, "verify", false, "decode the result and compare xxHash64 digests")
	case "decode":
		fs.BoolVar(&cfg.strict, "strict", false, "fail on invalid codes instead of stopping")
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	in := stdin
	if cfg.in != "" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := stdout
	if cfg.out != "" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	var err error
	if cmd == "encode" {
		err = encode(cfg, in, bw, stderr)
	} else {
		err = decode(cfg, in, bw, stderr)
	}
	if err != nil {
		return err
	}

	return bw.Flush()
}

func encode(cfg config, in io.Reader, out io.Writer, stderr io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var encoded bytes.Buffer
	if _, err := lzw.EncodeTo(io.MultiWriter(out, &encoded), data, cfg.early); err != nil {
		return err
	}

	if cfg.verify {
		d, err := lzw.NewDecoder(lzw.WithStrictCodes(true))
		if err != nil {
			return err
		}

		digest := hash.NewDigest()
		if _, err := d.DecodeStream(&encoded, cfg.early, digest); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		want := hash.Sum(data)
		if got := digest.Sum64(); got != want {
			return fmt.Errorf("verify: digest mismatch: got %016x, want %016x", got, want)
		}
		fmt.Fprintf(stderr, "verified %d bytes (xxh64 %016x)\n", len(data), want)
	}

	return nil
}

func decode(cfg config, in io.Reader, out io.Writer, stderr io.Writer) error {
	d, err := lzw.NewDecoder(lzw.WithStrictCodes(cfg.strict))
	if err != nil {
		return err
	}

	n, err := d.DecodeStream(in, cfg.early, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "decoded %d bytes\n", n)

	return nil
}
