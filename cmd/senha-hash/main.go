// Command senha-hash prints the stored form of a credential, for seeding the
// usuarios table by hand. With -verificar it instead checks a credential
// against a stored hash.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/o-magnata69/back-end-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "senha-hash: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("senha-hash", flag.ContinueOnError)
	senha := fs.String("senha", "", "credential to hash")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt work factor")
	verify := fs.String("verificar", "", "stored hash to check -senha against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *senha == "" {
		return fmt.Errorf("-senha is required")
	}

	hasher := auth.NewBcryptHasher(*cost)
	if *verify != "" {
		if err := hasher.Compare(*verify, *senha); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "ok")
		return err
	}

	hashed, err := hasher.Hash(*senha)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hashed)
	return err
}
