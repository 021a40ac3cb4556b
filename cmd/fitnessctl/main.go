package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashujumbo12/FitnessApp/internal/cli"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	defaultDBPath := os.Getenv("DB_PATH")
	if defaultDBPath == "" {
		defaultDBPath = filepath.Join("data", "fitness.db")
	}

	var err error
	switch os.Args[1] {
	case "import":
		flags := flag.NewFlagSet("import", flag.ExitOnError)
		dbPath := flags.String("db", defaultDBPath, "path to the SQLite database file")
		email := flags.String("email", "", "email of the user to import for")
		dryRun := flags.Bool("dry-run", false, "compute the report without writing")
		policy := flags.String("conflict-policy", "", "last-wins (default) or first-wins")
		_ = flags.Parse(os.Args[2:])

		if flags.NArg() != 1 || *email == "" {
			fmt.Fprintln(os.Stderr, "usage: fitnessctl import -email <email> [-db path] [-dry-run] [-conflict-policy policy] <file.csv>")
			os.Exit(2)
		}
		err = cli.RunImportCommand(*dbPath, flags.Arg(0), *email, *dryRun, *policy)

	case "create-user":
		flags := flag.NewFlagSet("create-user", flag.ExitOnError)
		dbPath := flags.String("db", defaultDBPath, "path to the SQLite database file")
		email := flags.String("email", "", "email for the new user")
		displayName := flags.String("name", "", "display name for the new user")
		_ = flags.Parse(os.Args[2:])

		if *email == "" {
			fmt.Fprintln(os.Stderr, "usage: fitnessctl create-user -email <email> [-name name] [-db path]")
			os.Exit(2)
		}
		err = cli.RunCreateUserCommand(*dbPath, *email, *displayName)

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fitnessctl <import|create-user> [flags]")
}
