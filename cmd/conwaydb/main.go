package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"combinat-kernel/conway"
	"combinat-kernel/gf"
)

func usage() {
	fmt.Println(`usage: conwaydb <export|verify|show> [options]

Subcommands:
  export   Write the built-in Conway polynomial table to a digest-protected
           JSON file
           Flags:
             -out <path>   output file (default: ./conway_polynomials.json)

  verify   Check every entry of a database for primitivity and subfield
           compatibility
           Flags:
             -in <path>    database file (default: built-in table)
             -maxdeg <int> skip entries of larger degree (default: 12)

  show     Print the polynomial for one prime power
           Flags:
             -p <int>      characteristic (required)
             -n <int>      degree (default: 1)
             -in <path>    database file (default: built-in table)`)
	os.Exit(1)
}

func openDB(path string) *conway.Database {
	if path == "" {
		return conway.Builtin()
	}
	db, err := conway.Load(path)
	if err != nil {
		log.Fatalf("load %s: %v", path, err)
	}
	return db
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "export":
		runExport(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "show":
		runShow(os.Args[2:])
	default:
		usage()
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "conway_polynomials.json", "output file")
	fs.Parse(args)

	db := conway.Builtin()
	if err := db.Save(*out); err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Printf("wrote %d entries to %s\n", db.Len(), *out)
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	in := fs.String("in", "", "database file (empty = built-in)")
	maxDeg := fs.Int("maxdeg", 12, "skip entries of larger degree")
	fs.Parse(args)

	db := openDB(*in)
	checked, skipped := 0, 0
	for _, p := range db.Primes() {
		for _, n := range db.Degrees(p) {
			if n > *maxDeg {
				skipped++
				continue
			}
			if err := gf.VerifyConway(db, p, n); err != nil {
				log.Fatalf("verify: C(%d,%d): %v", p, n, err)
			}
			checked++
		}
	}
	fmt.Printf("verified %d entries (%d skipped above degree %d)\n", checked, skipped, *maxDeg)
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	p := fs.Int64("p", 0, "characteristic")
	n := fs.Int("n", 1, "degree")
	in := fs.String("in", "", "database file (empty = built-in)")
	fs.Parse(args)

	if *p <= 0 {
		log.Fatal("show: -p is required")
	}
	db := openDB(*in)
	coeffs, err := db.Polynomial(*p, *n)
	if err != nil {
		log.Fatalf("show: %v", err)
	}
	fmt.Printf("C(%d,%d) = %s\n", *p, *n, polyString(coeffs))
}

func polyString(coeffs []int64) string {
	s := ""
	for d := len(coeffs) - 1; d >= 0; d-- {
		c := coeffs[d]
		if c == 0 {
			continue
		}
		if s != "" {
			s += " + "
		}
		switch {
		case d == 0:
			s += fmt.Sprintf("%d", c)
		case d == 1 && c == 1:
			s += "x"
		case d == 1:
			s += fmt.Sprintf("%d*x", c)
		case c == 1:
			s += fmt.Sprintf("x^%d", d)
		default:
			s += fmt.Sprintf("%d*x^%d", c, d)
		}
	}
	if s == "" {
		s = "0"
	}
	return s
}
