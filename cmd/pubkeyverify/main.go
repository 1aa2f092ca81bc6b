// Command pubkeyverify checks whether a public key is a valid point on the
// secp256k1 curve.
//
// Keys extracted from P2MS outputs that fail this check are not keys at
// all but embedded data. The default mode validates a single key and uses
// the exit status to report the verdict; -json batch-validates several
// keys (one P2MS key list) and prints the full report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/p2ms-research/pubkeyverify/pkg/pubkey"
)

const usageText = `Usage:
    pubkeyverify <pubkey-hex>
    pubkeyverify -json <pubkey-hex> [<pubkey-hex> ...]

Checks whether a public key is a valid point on the secp256k1 elliptic
curve used by Bitcoin. A valid point must satisfy the curve equation
y² = x³ + 7 (mod p). The hex string may carry an optional 0x prefix.

Exit status is 0 when the key is valid (for -json: when all keys are
valid points) and 1 otherwise.

Examples:
    # Valid compressed public key
    pubkeyverify 02a1633cafcc01ebfb6d78e39f687a1f0995c62fc95f51ead10a02ee0be551b5dc

    # Invalid/fake public key (data-carrying)
    pubkeyverify 02660224cd2ffbf92fada23aa883f0c51f2d55ae13394a40d6538ff2a63d0dce00
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("pubkeyverify: ")

	jsonOut := flag.Bool("json", false, "batch-validate all arguments and print a JSON report")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()
	args := flag.Args()

	if *jsonOut {
		if len(args) == 0 {
			flag.Usage()
			os.Exit(1)
		}
		runBatch(args)
		return
	}

	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	pubKeyHex := args[0]
	valid := pubkey.Validate(pubKeyHex)

	fmt.Printf("Public key: %s\n", pubKeyHex)
	fmt.Printf("Valid point on secp256k1: %v\n", valid)
	if valid {
		fmt.Println("✓ This is a valid public key")
		os.Exit(0)
	}
	fmt.Println("✗ This is NOT a valid public key (likely data-carrying)")
	os.Exit(1)
}

func runBatch(pubKeyHexes []string) {
	result := pubkey.ValidateBatch(pubKeyHexes)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encoding report: %v", err)
	}
	fmt.Println(string(out))

	if result.AllValidPoints {
		os.Exit(0)
	}
	os.Exit(1)
}
