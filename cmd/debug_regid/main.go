package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"registration-manager/feature/registration/models"
)

// Computes the registration identifier for a set of parent emails, to
// cross-check a ledger row by hand.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_regid EMAIL [EMAIL...]")
	}

	emails := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		emails = append(emails, strings.ToLower(strings.TrimSpace(arg)))
	}

	id := models.NewRegistrationID(emails)

	sorted := append([]string(nil), emails...)
	sort.Strings(sorted)

	fmt.Printf("Parent email set: %s\n", strings.Join(sorted, ", "))
	fmt.Printf("Registration ID:  %d\n", id)
	fmt.Printf("Ledger form:      %s\n", id.Pretty())
}
