package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/askfm/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags:
//
//	-u string   path of the user record file
//	-q string   path of the question record file
//
// The function filters os.Args to only the flags it handles, using
// flagx.FilterArgs, so the -c/-config flag consumed by parseJson does not
// interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-q"})

	fs := flag.NewFlagSet("askfm", flag.ContinueOnError)

	fs.StringVar(&cfg.UserFilePath, "u", cfg.UserFilePath, "path of the user record file")
	fs.StringVar(&cfg.QuestionFilePath, "q", cfg.QuestionFilePath, "path of the question record file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
