// Command ecpdemo exercises the ecp engine against a named curve: it
// computes k·G for a given scalar and prints the resulting affine
// coordinates in hex.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Yawning/polarssl/ecp"
	"github.com/Yawning/polarssl/mpi"
)

var curveNames = map[string]ecp.NamedCurve{
	"P-192": ecp.SECP192R1,
	"P-224": ecp.SECP224R1,
	"P-256": ecp.SECP256R1,
	"P-384": ecp.SECP384R1,
	"P-521": ecp.SECP521R1,
}

func main() {
	curveFlag := flag.String("curve", "P-256", "named curve: P-192, P-224, P-256, P-384, or P-521")
	scalarFlag := flag.String("k", "2", "decimal scalar to multiply the generator by")
	flag.Parse()

	id, ok := curveNames[strings.ToUpper(*curveFlag)]
	if !ok {
		log.Fatalf("ecpdemo: unknown curve %q", *curveFlag)
	}

	g, err := ecp.UseKnownDP(id)
	if err != nil {
		log.Fatalf("ecpdemo: UseKnownDP: %v", err)
	}

	k, err := mpi.ReadString(10, *scalarFlag)
	if err != nil {
		log.Fatalf("ecpdemo: parsing scalar: %v", err)
	}

	r, err := g.Mul(k, g.G)
	if err != nil {
		log.Fatalf("ecpdemo: scalar multiplication: %v", err)
	}

	if r.IsZero {
		fmt.Println("result: point at infinity")
		return
	}
	fmt.Printf("result.X = %x\n", r.X.Bytes())
	fmt.Printf("result.Y = %x\n", r.Y.Bytes())
}
