package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/projectplaid/compiler/compiler"
)

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("plaidc: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// wireToken is the serialized shape of one token.
type wireToken struct {
	Symbol string `json:"symbol" cbor:"symbol"`
	Value  string `json:"value" cbor:"value"`
	Line   int    `json:"line" cbor:"line"`
	Column int    `json:"column" cbor:"column"`
}

func toWire(tokens []compiler.Token) []wireToken {
	wire := make([]wireToken, len(tokens))
	for i, tok := range tokens {
		wire[i] = wireToken{
			Symbol: tok.Symbol.String(),
			Value:  tok.Value,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		}
	}
	return wire
}

// dumpTokens writes the token stream to w in the requested format.
func dumpTokens(w io.Writer, tokens []compiler.Token, format string) error {
	switch format {
	case "text":
		for _, tok := range tokens {
			fmt.Fprintf(w, "%d:%d\t%s\n", tok.Pos.Line, tok.Pos.Column, tok)
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toWire(tokens))

	case "cbor":
		data, err := cborEncMode.Marshal(toWire(tokens))
		if err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}
