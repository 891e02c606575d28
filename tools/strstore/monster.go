package main

import "fmt"
import "os"

import "github.com/bnclabs/gostrstore/lib"
import "github.com/bnclabs/golog"
import "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"

// generatetexts return n texts produced from the monster production
// grammar at prodfile.
func generatetexts(n int, prodfile, bagdir string, seed uint64) [][]byte {
	text, err := os.ReadFile(prodfile)
	if err != nil {
		log.Fatalf("read %q: %v\n", prodfile, err)
	}
	root := compile(parsec.NewScanner(text)).(mcommon.Scope)
	scope := monster.BuildContext(root, seed, bagdir, prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)
	texts := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		scope = scope.RebuildContext()
		val := evaluate("root", scope, nterms["s"])
		texts = append(texts, lib.Str2bytes(val.(string)))
	}
	return texts
}

func compile(s parsec.Scanner) parsec.ParsecNode {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	return root
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) interface{} {

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v", r)
		}
	}()
	return monster.EvalForms(name, scope, forms)
}
