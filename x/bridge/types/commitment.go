package types

import (
	"bytes"

	"cosmossdk.io/math"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// AmountCommitment binds an amount, a blinding factor and a recipient hash
// into a single MiMC digest over the BN254 scalar field. The digest reveals
// nothing about the amount without the blinding factor.
func AmountCommitment(amount math.Int, blindingFactor, recipientHash []byte) []byte {
	h := mimc.NewMiMC()

	var e fr.Element
	e.SetBytes(amount.BigInt().Bytes())
	writeElement(h, e)
	e.SetBytes(blindingFactor)
	writeElement(h, e)
	e.SetBytes(recipientHash)
	writeElement(h, e)

	return h.Sum(nil)
}

// VerifyCommitment recomputes the commitment and compares it in full.
func VerifyCommitment(commitment []byte, amount math.Int, blindingFactor, recipientHash []byte) bool {
	return bytes.Equal(commitment, AmountCommitment(amount, blindingFactor, recipientHash))
}

type byteWriter interface {
	Write(p []byte) (n int, err error)
}

func writeElement(w byteWriter, e fr.Element) {
	bz := e.Bytes()
	// Write cannot fail: the bytes are a canonical field element.
	_, _ = w.Write(bz[:])
}
