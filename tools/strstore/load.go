package main

import "bytes"
import "math/rand"
import "os"

import "github.com/bnclabs/gostrstore/lib"
import "github.com/bnclabs/golog"
import "golang.org/x/exp/mmap"

// loadfile return one text per line from the corpus at path, either
// read into memory or copied out of a memory map.
func loadfile(path string, usemmap bool) [][]byte {
	var data []byte
	if usemmap {
		r, err := mmap.Open(path)
		if err != nil {
			log.Fatalf("mmap %q: %v\n", path, err)
		}
		defer r.Close()
		data = lib.Fixbuffer(nil, int64(r.Len()))
		if _, err := r.ReadAt(data, 0); err != nil {
			log.Fatalf("mmap read %q: %v\n", path, err)
		}
	} else {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			log.Fatalf("read %q: %v\n", path, err)
		}
	}
	texts := [][]byte{}
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if line = bytes.TrimSpace(line); len(line) > 0 {
			texts = append(texts, line)
		}
	}
	return texts
}

// randomtexts return n texts drawn from a pool of roughly n/4 unique
// values, so that interning observes a healthy hit ratio.
func randomtexts(n, seed int) [][]byte {
	src := rand.New(rand.NewSource(int64(seed)))
	unique := n / 4
	if unique == 0 {
		unique = 1
	}
	pool := make([][]byte, unique)
	for i := range pool {
		text := make([]byte, src.Intn(57)+8)
		for j := range text {
			text[j] = byte(97 + src.Intn(26))
		}
		pool[i] = text
	}
	texts := make([][]byte, n)
	for i := range texts {
		texts[i] = pool[src.Intn(unique)]
	}
	return texts
}
