// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rc5 encrypts or decrypts data with RC5 in ECB mode.
//
// Usage:
//
//	rc5 [-d] [-key HEX] [-rounds N] [-hex] [-in FILE] [-out FILE]
//
// Without -key, the key is read from the terminal as a passphrase. This needs
// -in, so that stdin is free for the prompt, and stdin must be a terminal.
//
// ECB mode leaks patterns in the input and output is zero-padded to 8 bytes;
// the command is meant for testing, not for protecting data.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/rcfamily/crypto/rc5"
)

// terminal is the key source used when no -key is given.
type terminal interface {
	IsTerminal() bool
	ReadPassword(prompt string) ([]byte, error)
}

type stdinTerminal struct {
	stderr io.Writer
}

func (t stdinTerminal) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (t stdinTerminal) ReadPassword(prompt string) ([]byte, error) {
	fmt.Fprint(t.stderr, prompt)
	defer fmt.Fprintln(t.stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

var errNoKey = errors.New("no key given and stdin is not a terminal")

func main() {
	log.SetFlags(0)
	log.SetPrefix("rc5: ")
	rc5.SetLogger(log.New(os.Stderr, "rc5: ", 0))

	if err := run(os.Args[1:], os.Stdin, os.Stdout, stdinTerminal{os.Stderr}); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, tty terminal) error {
	fs := flag.NewFlagSet("rc5", flag.ContinueOnError)
	var (
		decrypt = fs.Bool("d", false, "decrypt instead of encrypt")
		keyHex  = fs.String("key", "", "key as a hex string (0 to 255 bytes)")
		rounds  = fs.Int("rounds", rc5.Rounds, "number of rounds (0 to 255)")
		useHex  = fs.Bool("hex", false, "hex-encode output when encrypting, hex-decode input when decrypting")
		inPath  = fs.String("in", "", "input file (default stdin)")
		outPath = fs.String("out", "", "output file (default stdout)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	key, err := readKey(*keyHex, *inPath, tty)
	if err != nil {
		return err
	}
	c, err := rc5.NewCipherWithRounds(key, *rounds)
	if err != nil {
		return err
	}

	var in []byte
	if *inPath != "" {
		in, err = ioutil.ReadFile(*inPath)
	} else {
		in, err = ioutil.ReadAll(stdin)
	}
	if err != nil {
		return err
	}

	var out []byte
	if *decrypt {
		if *useHex {
			if in, err = hex.DecodeString(string(bytes.TrimSpace(in))); err != nil {
				return fmt.Errorf("decoding input: %v", err)
			}
		}
		out = c.DecryptECB(in)
	} else {
		out = c.EncryptECB(in)
		if *useHex {
			out = []byte(hex.EncodeToString(out) + "\n")
		}
	}

	if *outPath != "" {
		return ioutil.WriteFile(*outPath, out, 0600)
	}
	_, err = stdout.Write(out)
	return err
}

// readKey decodes keyHex, or prompts on the terminal when it is empty. The
// terminal is only used when the data does not come from stdin as well.
func readKey(keyHex, inPath string, tty terminal) ([]byte, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("decoding key: %v", err)
		}
		return key, nil
	}
	if inPath == "" || !tty.IsTerminal() {
		return nil, errNoKey
	}
	return tty.ReadPassword("Key: ")
}
