// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

// Command symspell loads a frequency dictionary (or a previously saved
// index) and corrects lines of text read from stdin, one corrected line
// per input line, via LookupCompound. With -single, each input line is
// instead looked up as one term via Lookup and every suggestion is printed
// on its own line. With -save, the loaded index is written out and no
// input is read.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	spell "github.com/gosymspell/symspell"
)

func main() {
	var (
		dictPath    = flag.String("dict", "", "path to a whitespace-delimited frequency dictionary (term count per line)")
		termIndex   = flag.Int("term-index", 0, "0-based field index of the term in -dict")
		countIndex  = flag.Int("count-index", 1, "0-based field index of the count in -dict")
		indexPath   = flag.String("index", "", "path to a previously saved index (see -save)")
		compressed  = flag.Bool("gzip", true, "treat -index as gzip-compressed, and gzip-compress -save output")
		savePath    = flag.String("save", "", "after loading -dict, write the built index here and exit")
		configPath  = flag.String("config", "", "path to a YAML config file (see Config)")
		editMax     = flag.Int("edit-distance", 2, "maximum edit distance for corrections")
		verbosity   = flag.Int("verbosity", int(spell.VerbosityTop), "0=top, 1=closest, 2=all")
		single      = flag.Bool("single", false, "correct each stdin line as one term via Lookup instead of LookupCompound")
	)
	flag.Parse()

	var (
		idx *spell.Index
		err error
	)
	if *configPath != "" {
		cfg, cfgErr := spell.LoadConfig(*configPath)
		if cfgErr != nil {
			log.Fatalf("symspell: loading config: %v", cfgErr)
		}
		idx, err = spell.NewFromConfig(cfg, nil)
	} else {
		idx, err = spell.New()
	}
	if err != nil {
		log.Fatalf("symspell: building index: %v", err)
	}

	switch {
	case *indexPath != "":
		if err := idx.LoadFile(*indexPath, *compressed); err != nil {
			log.Fatalf("symspell: loading index %s: %v", *indexPath, err)
		}
	case *dictPath != "":
		n, err := idx.LoadDictionaryFile(*dictPath, *termIndex, *countIndex)
		if err != nil {
			log.Fatalf("symspell: loading dictionary %s: %v", *dictPath, err)
		}
		log.Printf("symspell: loaded %d terms from %s", n, *dictPath)
	default:
		fmt.Fprintln(os.Stderr, "symspell: one of -dict or -index is required")
		flag.Usage()
		os.Exit(2)
	}

	if *savePath != "" {
		if err := idx.SaveFile(*savePath, *compressed); err != nil {
			log.Fatalf("symspell: saving index to %s: %v", *savePath, err)
		}
		log.Printf("symspell: saved index to %s", *savePath)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if *single {
			for _, s := range idx.Lookup(line, spell.Verbosity(*verbosity), *editMax) {
				fmt.Fprintf(out, "%s\t%d\t%d\n", s.Term, s.Distance, s.Count)
			}
			continue
		}
		result := idx.LookupCompound(line, *editMax)
		fmt.Fprintf(out, "%s\t%d\t%d\n", result.Term, result.Distance, result.Count)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("symspell: reading stdin: %v", err)
	}
}
