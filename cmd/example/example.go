package main

import (
	"fmt"

	"github.com/bearycool11/pmll"
)

func main() {
	brain := pmll.New(pmll.Settings{
		Ident: "example",
	})
	brain.Start()

	// record some inputs, each call appends to the context log
	// and returns the derived response
	response, _ := brain.Record("Hello, Persistent World!")
	fmt.Println(response)
	brain.Record("a")
	brain.Record("b")
	brain.Record("a")

	fmt.Println("Current in-memory context:", brain.History())

	// fingerprint a payload and verify it against the result
	fingerprint := brain.Fingerprint("Hello, Persistent World!")
	fmt.Println("Fingerprint: " + fingerprint)
	fmt.Println("Verified:", brain.Verify("Hello, Persistent World!", fingerprint))

	// every record carries its own fingerprint so the whole
	// log can be checked for tampering
	fmt.Println("Audit passed:", brain.Audit())

	brain.Shutdown()
	fmt.Println("finished")
}
