package cli

import (
	"flag"
	"os"

	"github.com/voodooEntity/archivist"
)

type Args struct {
	Command   string
	Input     string
	Signature string
	Verbose   bool
}

var Data Args

func ParseArgs() {
	if 2 > len(os.Args) {
		PrintHelpText()
	}
	command := os.Args[1]
	os.Args = os.Args[1:]

	if 1 < len(os.Args) {
		if ok := os.Args[1]; ok == "help" {
			PrintHelpText()
		}
	}

	// the text payload most commands operate on
	var input string
	flag.StringVar(&input, "input", "", "Text payload to record / fingerprint / verify")

	// a previously issued fingerprint for the verify command
	var signature string
	flag.StringVar(&signature, "signature", "", "Fingerprint to verify the input against")

	// verbose output flag
	var verboseFlag bool
	flag.BoolVar(&verboseFlag, "verbose", false, "Verbose logging flag")

	flag.Parse()

	Data = Args{
		Command:   command,
		Input:     input,
		Signature: signature,
		Verbose:   verboseFlag,
	}
}

func PrintHelpText() {
	helpText := "PMLL Help:\n" +
		"> PMLL is a persistent memory logic loop. It records every input it is given\n" +
		"  into an append-only in-memory context log and derives a response for each\n" +
		"  of them. Next to the log it ships a content integrity checker that can\n" +
		"  fingerprint any text payload and verify a payload against a previously\n" +
		"  issued fingerprint.\n\n" +
		"  The cli interface has to be called like\n" +
		"  pmll <command> [+<args>]\n\n" +
		"  Commands: \n" +
		"    record\n" +
		"     - Records the given input into the context log, prints the derived\n" +
		"       response and the current log content.\n" +
		"     - Args: -input\n\n" +
		"    fingerprint\n" +
		"     - Prints the content fingerprint of the given input.\n" +
		"     - Args: -input\n\n" +
		"    verify\n" +
		"     - Verifies the given input against a previously issued fingerprint\n" +
		"       and prints the result.\n" +
		"     - Args: -input -signature\n\n" +
		"    serve\n" +
		"     - Starts the http api exposing record/history/fingerprint/verify\n" +
		"       and the underlying gits memory.\n\n" +
		"    help\n" +
		"     - Prints the help text you are just reading.\n\n" +
		"    version\n" +
		"     - Prints the current deployed version of pmll\n\n" +
		"  Args explained: \n" +
		"    -input \"some text\"          | The text payload to operate on. Any value\n" +
		"                                    is accepted, empty included.\n\n" +
		"    -signature \"<fingerprint>\"  | A fingerprint as printed by the fingerprint\n" +
		"                                    command.\n\n" +
		"    --verbose                   | Activates verbose output mode\n"
	archivist.Info(helpText)
	os.Exit(1)
}
